package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a listing classification. SchemaKey selects the form schema and survives
// renames of the display name.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	SchemaKey    string    `gorm:"size:50;index" json:"schema_key"`
	Icon         string    `gorm:"size:50" json:"icon"`
	GroupName    string    `gorm:"size:100" json:"group_name"`
	Color        string    `gorm:"size:20" json:"color"`
	Active       bool      `gorm:"not null" json:"active"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
