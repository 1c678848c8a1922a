package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/metrics"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentFilter narrows the moderation list. Zero values leave a dimension unconstrained.
type ContentFilter struct {
	Status     models.ContentStatus
	CategoryID *uuid.UUID
	DivisionID string
	DistrictID string
	Limit      int
	Offset     int
}

type Stats struct {
	Pending          int64                `json:"pending"`
	Approved         int64                `json:"approved"`
	Rejected         int64                `json:"rejected"`
	Total            int64                `json:"total"`
	ActiveCategories int64                `json:"active_categories"`
	Users            int64                `json:"users"`
	PendingReports   int64                `json:"pending_reports"`
	RecentPending    []models.ContentItem `json:"recent_pending"`
}

type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// List returns listings newest first. District admins only ever see their own district.
func (s *ModerationService) List(ctx context.Context, actor identity.Actor, f ContentFilter) ([]models.ContentItem, int64, error) {
	if err := requireScope(actor); err != nil {
		return nil, 0, err
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	if actor.IsDistrictAdmin() {
		if f.DistrictID != "" && f.DistrictID != actor.DistrictID {
			return nil, 0, ErrForbidden
		}
		f.DistrictID = actor.DistrictID
	}

	query := s.db.WithContext(ctx).Model(&models.ContentItem{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.DivisionID != "" {
		query = query.Where("division_id = ?", f.DivisionID)
	}
	if f.DistrictID != "" {
		query = query.Scopes(identity.ForDistrict(f.DistrictID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}

	var items []models.ContentItem
	if err := query.Preload("Category").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SetStatus moves a listing between states. Nothing goes back to pending. Setting the
// current status again only refreshes updated_at. A non-nil expectedVersion must match
// the stored version.
func (s *ModerationService) SetStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, status models.ContentStatus, expectedVersion *int64) (*models.ContentItem, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var item models.ContentItem
	var from models.ContentStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return notFound(err, ErrContentNotFound)
		}
		if !actor.CanAccessDistrict(item.DistrictID) {
			return ErrForbidden
		}
		if expectedVersion != nil && *expectedVersion != item.Version {
			return ErrVersionConflict
		}

		from = item.Status
		if status == from {
			item.UpdatedAt = time.Now()
			return tx.Model(&models.ContentItem{}).Where("id = ?", item.ID).
				UpdateColumn("updated_at", item.UpdatedAt).Error
		}
		if status == models.StatusPending {
			return ErrInvalidTransition
		}

		return transition(tx, actor, &item, status, models.ActionStatusChange, "", expectedVersion != nil)
	})
	if err != nil {
		return nil, err
	}

	if from != status {
		metrics.ModerationTransitionsTotal.WithLabelValues(string(from), string(status)).Inc()
		slog.InfoContext(ctx, "content status changed", "content_id", item.ID, "user_id", actor.ID,
			"action", models.ActionStatusChange, "from", from, "to", status)
	}
	return &item, nil
}

// Delete removes a listing together with its reports, reviews and saved entries. The
// audit trail is kept.
func (s *ModerationService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ContentItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return notFound(err, ErrContentNotFound)
		}
		if !actor.CanAccessDistrict(item.DistrictID) {
			return ErrForbidden
		}

		for _, dependent := range []interface{}{&models.Report{}, &models.Review{}, &models.SavedItem{}} {
			if err := tx.Where("content_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.ContentItem{}, "id = ?", id).Error; err != nil {
			return err
		}

		return recordAction(tx, actor, &models.ModerationAction{
			ContentID:  id,
			Action:     models.ActionDelete,
			FromStatus: item.Status,
			Note:       item.Title,
		})
	})
	if err != nil {
		return err
	}

	metrics.ContentDeletedTotal.Inc()
	slog.InfoContext(ctx, "content deleted", "content_id", id, "user_id", actor.ID, "action", models.ActionDelete)
	return nil
}

// Stats feeds the admin dashboard, scoped to the district of a district admin.
func (s *ModerationService) Stats(ctx context.Context, actor identity.Actor) (*Stats, error) {
	if err := requireScope(actor); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	scoped := func(q *gorm.DB) *gorm.DB {
		if actor.IsDistrictAdmin() {
			return q.Scopes(identity.ForDistrict(actor.DistrictID))
		}
		return q
	}

	var rows []struct {
		Status models.ContentStatus
		Count  int64
	}
	err := scoped(db.Model(&models.ContentItem{})).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, r := range rows {
		switch r.Status {
		case models.StatusPending:
			stats.Pending = r.Count
		case models.StatusApproved:
			stats.Approved = r.Count
		case models.StatusRejected:
			stats.Rejected = r.Count
		}
		stats.Total += r.Count
	}

	if err := db.Model(&models.Category{}).Where("active = ?", true).Count(&stats.ActiveCategories).Error; err != nil {
		return nil, err
	}
	if err := scoped(db.Model(&models.Profile{})).Count(&stats.Users).Error; err != nil {
		return nil, err
	}

	reports := db.Model(&models.Report{}).Where("status = ?", models.ReportPending)
	if actor.IsDistrictAdmin() {
		reports = reports.Where("content_id IN (?)",
			db.Model(&models.ContentItem{}).Select("id").Scopes(identity.ForDistrict(actor.DistrictID)))
	}
	if err := reports.Count(&stats.PendingReports).Error; err != nil {
		return nil, err
	}

	err = scoped(db.Model(&models.ContentItem{})).
		Where("status = ?", models.StatusPending).
		Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentPending).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// History returns the audit trail of a listing, newest first.
func (s *ModerationService) History(ctx context.Context, actor identity.Actor, id uuid.UUID) ([]models.ModerationAction, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	db := s.db.WithContext(ctx)
	if actor.IsDistrictAdmin() {
		var item models.ContentItem
		if err := db.Select("id", "district_id").First(&item, "id = ?", id).Error; err != nil {
			return nil, notFound(err, ErrContentNotFound)
		}
		if !actor.CanAccessDistrict(item.DistrictID) {
			return nil, ErrForbidden
		}
	}

	var actions []models.ModerationAction
	if err := db.Where("content_id = ?", id).Order("created_at DESC").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

// transition writes a status change with a version bump and its audit row. It must run
// inside a transaction. A guarded transition fails if the row changed since it was read.
func transition(tx *gorm.DB, actor identity.Actor, item *models.ContentItem, to models.ContentStatus, action, note string, guarded bool) error {
	from := item.Status
	now := time.Now()

	query := tx.Model(&models.ContentItem{}).Where("id = ?", item.ID)
	if guarded {
		query = query.Where("version = ?", item.Version)
	}
	result := query.Updates(map[string]interface{}{
		"status":     to,
		"version":    gorm.Expr("version + ?", 1),
		"updated_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if guarded && result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	item.Status = to
	item.Version++
	item.UpdatedAt = now

	return recordAction(tx, actor, &models.ModerationAction{
		ContentID:  item.ID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
	})
}
