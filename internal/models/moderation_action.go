package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionStatusChange = "status_change"
	ActionDelete       = "delete"
	ActionReportBan    = "report_ban"
	ActionAdminCreate  = "admin_create"
	ActionEdit         = "edit"
)

// ModerationAction is an append-only audit row. It outlives the listing it refers to.
type ModerationAction struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ContentID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"content_id"`
	ActorID    *uuid.UUID    `gorm:"type:uuid;index" json:"actor_id"`
	ActorName  string        `gorm:"size:255" json:"actor_name"`
	Action     string        `gorm:"size:30;not null" json:"action"`
	FromStatus ContentStatus `gorm:"size:20" json:"from_status,omitempty"`
	ToStatus   ContentStatus `gorm:"size:20" json:"to_status,omitempty"`
	Note       string        `gorm:"size:500" json:"note,omitempty"`
	CreatedAt  time.Time     `gorm:"index" json:"created_at"`
}

func (a *ModerationAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
