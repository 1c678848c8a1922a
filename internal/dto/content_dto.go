package dto

import (
	"bytes"
	"time"

	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/sponsorship"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in descriptions is dropped; goldmark only renders it with html.WithUnsafe.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

type SubmitContentRequest struct {
	CategoryID uuid.UUID         `json:"category_id"`
	DistrictID string            `json:"district_id"`
	DivisionID string            `json:"division_id"`
	Values     map[string]string `json:"values"`
}

type AdminContentRequest struct {
	SubmitContentRequest
	IsSponsored     bool       `json:"is_sponsored"`
	SponsoredUntil  *time.Time `json:"sponsored_until"`
	ExpectedVersion *int64     `json:"expected_version"`
}

// ContentResponse is a listing as clients see it. IsSponsored is the effective
// sponsorship at response time, StoredSponsored the raw flag.
type ContentResponse struct {
	ID              uuid.UUID            `json:"id"`
	CategoryID      uuid.UUID            `json:"category_id"`
	Category        *models.Category     `json:"category,omitempty"`
	DistrictID      string               `json:"district_id"`
	DivisionID      string               `json:"division_id"`
	Title           string               `json:"title"`
	Phone           string               `json:"phone"`
	Address         string               `json:"address"`
	Description     string               `json:"description"`
	DescriptionHTML string               `json:"description_html,omitempty"`
	Metadata        map[string]string    `json:"metadata"`
	Status          models.ContentStatus `json:"status"`
	IsSponsored     bool                 `json:"is_sponsored"`
	StoredSponsored bool                 `json:"stored_sponsored"`
	SponsoredUntil  *time.Time           `json:"sponsored_until"`
	SubmittedByName string               `json:"submitted_by_name"`
	Views           int64                `json:"views"`
	Calls           int64                `json:"calls"`
	Version         int64                `json:"version"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func NewContentResponse(item *models.ContentItem, now time.Time) ContentResponse {
	return ContentResponse{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		Category:        item.Category,
		DistrictID:      item.DistrictID,
		DivisionID:      item.DivisionID,
		Title:           item.Title,
		Phone:           item.Phone,
		Address:         item.Address,
		Description:     item.Description,
		Metadata:        item.MetadataMap(),
		Status:          item.Status,
		IsSponsored:     sponsorship.EffectiveFor(item, now),
		StoredSponsored: item.IsSponsored,
		SponsoredUntil:  item.SponsoredUntil,
		SubmittedByName: item.SubmittedByName,
		Views:           item.Views,
		Calls:           item.Calls,
		Version:         item.Version,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// NewContentDetail adds the rendered description used by the detail screen.
func NewContentDetail(item *models.ContentItem, now time.Time) (ContentResponse, error) {
	resp := NewContentResponse(item, now)
	if item.Description == "" {
		return resp, nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(item.Description), &buf); err != nil {
		return resp, err
	}
	resp.DescriptionHTML = buf.String()
	return resp, nil
}

func NewContentList(items []models.ContentItem, now time.Time) []ContentResponse {
	out := make([]ContentResponse, 0, len(items))
	for i := range items {
		out = append(out, NewContentResponse(&items[i], now))
	}
	return out
}
