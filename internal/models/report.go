package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// Resolution records which admin action closed a report.
const (
	ResolutionIgnored         = "ignored"
	ResolutionContentRejected = "content_rejected"
)

// Report is a user complaint against a listing. A user may report the same listing
// any number of times.
type Report struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ContentID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"content_id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason     string       `gorm:"not null;size:500" json:"reason"`
	Status     ReportStatus `gorm:"not null;size:20;index" json:"status"`
	Resolution string       `gorm:"size:30" json:"resolution,omitempty"`
	ResolvedBy *uuid.UUID   `gorm:"type:uuid" json:"resolved_by,omitempty"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Content    *ContentItem `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	Reporter   *Profile     `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
