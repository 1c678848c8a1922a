package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one rating per user per listing; a second review replaces the first.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_content_user,priority:1" json:"content_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_content_user,priority:2" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"size:1000" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Reviewer  *Profile  `gorm:"foreignKey:UserID" json:"reviewer,omitempty"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
