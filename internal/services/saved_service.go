package services

import (
	"context"
	"time"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/sponsorship"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedService struct {
	db *gorm.DB
}

func NewSavedService(db *gorm.DB) *SavedService {
	return &SavedService{db: db}
}

// Toggle saves a listing for the caller, or unsaves it if it was saved. It reports
// whether the listing is saved afterwards.
func (s *SavedService) Toggle(ctx context.Context, actor identity.Actor, contentID uuid.UUID) (bool, error) {
	saved := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND content_id = ?", actor.ID, contentID).Delete(&models.SavedItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		if err := contentExists(tx, contentID); err != nil {
			return err
		}
		saved = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.SavedItem{
			UserID:    actor.ID,
			ContentID: contentID,
		}).Error
	})
	return saved, err
}

// List returns the caller's saved approved listings in display order.
func (s *SavedService) List(ctx context.Context, actor identity.Actor, now time.Time) ([]models.ContentItem, error) {
	db := s.db.WithContext(ctx)

	var items []models.ContentItem
	err := db.Where("id IN (?)", db.Model(&models.SavedItem{}).Select("content_id").Where("user_id = ?", actor.ID)).
		Where("status = ?", models.StatusApproved).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	sponsorship.SortForDisplay(items, now)
	return items, nil
}
