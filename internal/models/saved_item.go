package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedItem struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content,priority:1" json:"user_id"`
	ContentID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content,priority:2" json:"content_id"`
	CreatedAt time.Time    `json:"created_at"`
	Content   *ContentItem `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (s *SavedItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
