package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amarjela/district-backend/internal/form"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/metrics"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/schema"
	"github.com/amarjela/district-backend/internal/sponsorship"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const searchLimit = 50

type SubmitInput struct {
	CategoryID uuid.UUID
	DistrictID string
	DivisionID string
	Values     map[string]string
}

type AdminCreateInput struct {
	SubmitInput
	IsSponsored    bool
	SponsoredUntil *time.Time
}

type AdminUpdateInput struct {
	Values          map[string]string
	IsSponsored     bool
	SponsoredUntil  *time.Time
	ExpectedVersion *int64
}

type ContentService struct {
	db       *gorm.DB
	registry *schema.Registry
}

func NewContentService(db *gorm.DB, registry *schema.Registry) *ContentService {
	return &ContentService{db: db, registry: registry}
}

// Submit stores a user listing as pending after validating it against the category schema.
func (s *ContentService) Submit(ctx context.Context, actor identity.Actor, in SubmitInput) (*models.ContentItem, error) {
	item, err := s.submit(ctx, actor, in)
	metrics.SubmissionsTotal.WithLabelValues("user", submissionResult(err)).Inc()
	return item, err
}

func (s *ContentService) submit(ctx context.Context, actor identity.Actor, in SubmitInput) (*models.ContentItem, error) {
	db := s.db.WithContext(ctx)

	category, err := s.category(db, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, ErrCategoryInactive
	}
	if strings.TrimSpace(in.DistrictID) == "" {
		return nil, ErrDistrictRequired
	}

	cfg := s.registry.Resolve(category.SchemaKey, category.Name)
	if err := validateValues(cfg, in.Values); err != nil {
		return nil, err
	}

	divisionID := strings.TrimSpace(in.DivisionID)
	if divisionID == "" {
		divisionID = actor.DivisionID
	}

	std, metadata := form.Partition(cfg, in.Values)
	item := models.ContentItem{
		CategoryID:      category.ID,
		DistrictID:      strings.TrimSpace(in.DistrictID),
		DivisionID:      divisionID,
		Title:           std.Title,
		Phone:           std.Phone,
		Address:         std.Address,
		Description:     std.Description,
		Metadata:        datatypes.NewJSONType(metadata),
		Status:          models.StatusPending,
		SubmittedBy:     actor.IDPtr(),
		SubmittedByName: actor.Name,
		Version:         1,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "content submitted", "content_id", item.ID, "user_id", actor.ID, "category", cfg.Key)
	return &item, nil
}

// AdminCreate is the trusted fast path: the listing is approved immediately.
func (s *ContentService) AdminCreate(ctx context.Context, actor identity.Actor, in AdminCreateInput) (*models.ContentItem, error) {
	item, err := s.adminCreate(ctx, actor, in)
	metrics.SubmissionsTotal.WithLabelValues("admin", submissionResult(err)).Inc()
	return item, err
}

func (s *ContentService) adminCreate(ctx context.Context, actor identity.Actor, in AdminCreateInput) (*models.ContentItem, error) {
	if !actor.IsAdmin() || !actor.CanAccessDistrict(in.DistrictID) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.DistrictID) == "" {
		return nil, ErrDistrictRequired
	}

	var item models.ContentItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.category(tx, in.CategoryID)
		if err != nil {
			return err
		}

		cfg := s.registry.Resolve(category.SchemaKey, category.Name)
		if err := validateValues(cfg, in.Values); err != nil {
			return err
		}

		std, metadata := form.Partition(cfg, in.Values)
		item = models.ContentItem{
			CategoryID:      category.ID,
			DistrictID:      strings.TrimSpace(in.DistrictID),
			DivisionID:      strings.TrimSpace(in.DivisionID),
			Title:           std.Title,
			Phone:           std.Phone,
			Address:         std.Address,
			Description:     std.Description,
			Metadata:        datatypes.NewJSONType(metadata),
			Status:          models.StatusApproved,
			IsSponsored:     in.IsSponsored,
			SponsoredUntil:  sponsoredUntil(in.IsSponsored, in.SponsoredUntil),
			SubmittedBy:     actor.IDPtr(),
			SubmittedByName: models.AdminSubmitterName,
			Version:         1,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		return recordAction(tx, actor, &models.ModerationAction{
			ContentID: item.ID,
			Action:    models.ActionAdminCreate,
			ToStatus:  models.StatusApproved,
		})
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "content created by admin", "content_id", item.ID, "user_id", actor.ID)
	return &item, nil
}

// AdminUpdate re-validates and overwrites a listing's fields and sponsorship.
func (s *ContentService) AdminUpdate(ctx context.Context, actor identity.Actor, id uuid.UUID, in AdminUpdateInput) (*models.ContentItem, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var item models.ContentItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return notFound(err, ErrContentNotFound)
		}
		if !actor.CanAccessDistrict(item.DistrictID) {
			return ErrForbidden
		}
		if in.ExpectedVersion != nil && *in.ExpectedVersion != item.Version {
			return ErrVersionConflict
		}

		category, err := s.category(tx, item.CategoryID)
		if err != nil {
			return err
		}
		cfg := s.registry.Resolve(category.SchemaKey, category.Name)
		if err := validateValues(cfg, in.Values); err != nil {
			return err
		}

		std, metadata := form.Partition(cfg, in.Values)
		item.Title = std.Title
		item.Phone = std.Phone
		item.Address = std.Address
		item.Description = std.Description
		item.Metadata = datatypes.NewJSONType(metadata)
		item.IsSponsored = in.IsSponsored
		item.SponsoredUntil = sponsoredUntil(in.IsSponsored, in.SponsoredUntil)
		item.Version++
		item.UpdatedAt = time.Now()

		result := tx.Model(&models.ContentItem{}).
			Where("id = ? AND version = ?", item.ID, item.Version-1).
			Updates(map[string]interface{}{
				"title":           item.Title,
				"phone":           item.Phone,
				"address":         item.Address,
				"description":     item.Description,
				"metadata":        item.Metadata,
				"is_sponsored":    item.IsSponsored,
				"sponsored_until": item.SponsoredUntil,
				"version":         item.Version,
				"updated_at":      item.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}

		return recordAction(tx, actor, &models.ModerationAction{
			ContentID:  item.ID,
			Action:     models.ActionEdit,
			FromStatus: item.Status,
			ToStatus:   item.Status,
		})
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Browse lists the approved listings of one category in one district in display order.
func (s *ContentService) Browse(ctx context.Context, categoryID uuid.UUID, districtID string, now time.Time) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := s.db.WithContext(ctx).
		Scopes(identity.ForDistrict(districtID)).
		Where("category_id = ? AND status = ?", categoryID, models.StatusApproved).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	sponsorship.SortForDisplay(items, now)
	return items, nil
}

// Search matches q against the standard text columns of approved listings in a district.
// Ranking happens in SQL with the same effective sponsorship as SortForDisplay, so the
// limit never keeps an expired sponsor over a newer listing.
func (s *ContentService) Search(ctx context.Context, districtID, q string, now time.Time) ([]models.ContentItem, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []models.ContentItem{}, nil
	}
	pattern := "%" + likeEscaper.Replace(q) + "%"

	var items []models.ContentItem
	err := s.db.WithContext(ctx).
		Scopes(identity.ForDistrict(districtID)).
		Where("status = ?", models.StatusApproved).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(phone) LIKE ? ESCAPE '\' OR `+
			`LOWER(address) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                displayOrderSQL,
			Vars:               []interface{}{now.UTC()},
			WithoutParentheses: true,
		}}).
		Limit(searchLimit).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	sponsorship.SortForDisplay(items, now)
	return items, nil
}

const displayOrderSQL = "CASE WHEN is_sponsored AND (sponsored_until IS NULL OR sponsored_until >= ?) " +
	"THEN 1 ELSE 0 END DESC, created_at DESC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Get returns a listing with its category. Listings that are not approved are only
// visible to their submitter and to admins.
func (s *ContentService) Get(ctx context.Context, actor identity.Actor, id uuid.UUID) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := s.db.WithContext(ctx).Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrContentNotFound)
	}

	if item.Status != models.StatusApproved {
		owner := item.SubmittedBy != nil && *item.SubmittedBy == actor.ID
		if !owner && !(actor.IsAdmin() && actor.CanAccessDistrict(item.DistrictID)) {
			return nil, ErrContentNotFound
		}
	}
	return &item, nil
}

// Schema returns the form schema a listing was validated against.
func (s *ContentService) Schema(item *models.ContentItem) schema.Config {
	if item.Category == nil {
		return s.registry.Resolve("", "")
	}
	return s.registry.Resolve(item.Category.SchemaKey, item.Category.Name)
}

func (s *ContentService) RecordView(ctx context.Context, id uuid.UUID) error {
	return s.increment(ctx, id, "views")
}

func (s *ContentService) RecordCall(ctx context.Context, id uuid.UUID) error {
	return s.increment(ctx, id, "calls")
}

func (s *ContentService) increment(ctx context.Context, id uuid.UUID, column string) error {
	result := s.db.WithContext(ctx).Model(&models.ContentItem{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func (s *ContentService) category(db *gorm.DB, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return &category, nil
}

func validateValues(cfg schema.Config, values map[string]string) error {
	if err := form.Validate(cfg, values); err != nil {
		return err
	}
	return form.CheckBounds(cfg, values)
}

// An expiry without the flag carries no meaning and is dropped.
func sponsoredUntil(isSponsored bool, until *time.Time) *time.Time {
	if !isSponsored || until == nil {
		return nil
	}
	t := until.UTC()
	return &t
}

func recordAction(tx *gorm.DB, actor identity.Actor, action *models.ModerationAction) error {
	action.ActorID = actor.IDPtr()
	action.ActorName = actor.Name
	if action.ActorName == "" {
		action.ActorName = models.AdminSubmitterName
	}
	return tx.Create(action).Error
}

func submissionResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, form.ErrValidation), errors.Is(err, ErrCategoryInactive),
		errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrDistrictRequired):
		return "invalid"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
