package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/metrics"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin actions that close a report.
const (
	ReportActionIgnore = "ignore"
	ReportActionBan    = "ban_content"
)

const maxReasonLength = 500

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// File records a complaint. Duplicate reports by the same user are allowed.
func (s *ReportService) File(ctx context.Context, actor identity.Actor, contentID uuid.UUID, reason string) (*models.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, ErrReasonTooLong
	}

	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.ContentItem{}).Where("id = ?", contentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrContentNotFound
	}

	report := models.Report{
		ContentID: contentID,
		UserID:    actor.ID,
		Reason:    reason,
		Status:    models.ReportPending,
	}
	if err := db.Create(&report).Error; err != nil {
		return nil, err
	}

	metrics.ReportsFiledTotal.Inc()
	slog.InfoContext(ctx, "report filed", "content_id", contentID, "user_id", actor.ID)
	return &report, nil
}

// List returns reports newest first with their listing and reporter.
func (s *ReportService) List(ctx context.Context, actor identity.Actor, status models.ReportStatus, limit, offset int) ([]models.Report, int64, error) {
	if err := requireScope(actor); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}

	db := s.db.WithContext(ctx)
	query := db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if actor.IsDistrictAdmin() {
		query = query.Where("content_id IN (?)",
			db.Model(&models.ContentItem{}).Select("id").Scopes(identity.ForDistrict(actor.DistrictID)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.Preload("Content").Preload("Reporter").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Resolve closes a report. ban_content rejects the listing and resolves every pending
// report on it in the same transaction.
func (s *ReportService) Resolve(ctx context.Context, actor identity.Actor, reportID uuid.UUID, action string) (*models.Report, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if action != ReportActionIgnore && action != ReportActionBan {
		return nil, ErrInvalidAction
	}

	var report models.Report
	var resolved int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			return notFound(err, ErrReportNotFound)
		}

		var item models.ContentItem
		if err := tx.First(&item, "id = ?", report.ContentID).Error; err != nil {
			return notFound(err, ErrContentNotFound)
		}
		if !actor.CanAccessDistrict(item.DistrictID) {
			return ErrForbidden
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":      models.ReportResolved,
			"resolved_by": actor.IDPtr(),
			"resolved_at": now,
			"updated_at":  now,
		}

		if action == ReportActionIgnore {
			updates["resolution"] = models.ResolutionIgnored
			result := tx.Model(&models.Report{}).Where("id = ?", report.ID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			resolved = result.RowsAffected
			return tx.First(&report, "id = ?", report.ID).Error
		}

		if item.Status != models.StatusRejected {
			if err := transition(tx, actor, &item, models.StatusRejected, models.ActionReportBan, report.Reason, false); err != nil {
				return err
			}
		}

		updates["resolution"] = models.ResolutionContentRejected
		result := tx.Model(&models.Report{}).
			Where("content_id = ? AND (status = ? OR id = ?)", item.ID, models.ReportPending, report.ID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		resolved = result.RowsAffected
		return tx.First(&report, "id = ?", report.ID).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsResolvedTotal.WithLabelValues(action).Add(float64(resolved))
	slog.InfoContext(ctx, "report resolved", "content_id", report.ContentID, "user_id", actor.ID,
		"action", action, "reports_resolved", resolved)
	return &report, nil
}
