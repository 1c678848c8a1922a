package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AdminSubmitterName is recorded on listings entered directly by an admin.
const AdminSubmitterName = "Admin"

// ContentItem is one directory listing. Title, phone, address and description are fixed
// columns; every other schema field lives in Metadata.
type ContentItem struct {
	ID              uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID      uuid.UUID                             `gorm:"type:uuid;not null;index:idx_content_browse,priority:1" json:"category_id"`
	DistrictID      string                                `gorm:"size:64;not null;index:idx_content_browse,priority:2" json:"district_id"`
	DivisionID      string                                `gorm:"size:64;index" json:"division_id"`
	Title           string                                `gorm:"size:255;not null" json:"title"`
	Phone           string                                `gorm:"size:50" json:"phone"`
	Address         string                                `gorm:"size:500" json:"address"`
	Description     string                                `gorm:"type:text" json:"description"`
	Metadata        datatypes.JSONType[map[string]string] `json:"metadata"`
	Status          ContentStatus                         `gorm:"size:20;not null;index:idx_content_browse,priority:3" json:"status"`
	IsSponsored     bool                                  `gorm:"not null" json:"is_sponsored"`
	SponsoredUntil  *time.Time                            `json:"sponsored_until"`
	SubmittedBy     *uuid.UUID                            `gorm:"type:uuid;index" json:"submitted_by"`
	SubmittedByName string                                `gorm:"size:255" json:"submitted_by_name"`
	Views           int64                                 `gorm:"not null;default:0" json:"views"`
	Calls           int64                                 `gorm:"not null;default:0" json:"calls"`
	Version         int64                                 `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time                             `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time                             `json:"updated_at"`
	Category        *Category                             `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (c *ContentItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}

// MetadataMap returns the extra field values, never nil.
func (c *ContentItem) MetadataMap() map[string]string {
	m := c.Metadata.Data()
	if m == nil {
		return map[string]string{}
	}
	return m
}
