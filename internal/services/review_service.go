package services

import (
	"context"
	"strings"
	"time"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewSummary struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Upsert stores the caller's review of a listing, replacing an earlier one.
func (s *ReviewService) Upsert(ctx context.Context, actor identity.Actor, contentID uuid.UUID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	db := s.db.WithContext(ctx)
	if err := contentExists(db, contentID); err != nil {
		return nil, err
	}

	review := models.Review{
		ID:        uuid.New(),
		ContentID: contentID,
		UserID:    actor.ID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		UpdatedAt: time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(&review).Error
	if err != nil {
		return nil, err
	}

	var stored models.Review
	if err := db.Where("content_id = ? AND user_id = ?", contentID, actor.ID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListForContent returns reviews newest first with reviewer profiles.
func (s *ReviewService) ListForContent(ctx context.Context, contentID uuid.UUID) ([]models.Review, ReviewSummary, error) {
	db := s.db.WithContext(ctx)

	var reviews []models.Review
	err := db.Where("content_id = ?", contentID).Preload("Reviewer").Order("updated_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, ReviewSummary{}, err
	}

	summary := ReviewSummary{Count: int64(len(reviews))}
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		summary.Average = float64(total) / float64(len(reviews))
	}
	return reviews, summary, nil
}

func contentExists(db *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := db.Model(&models.ContentItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrContentNotFound
	}
	return nil
}
