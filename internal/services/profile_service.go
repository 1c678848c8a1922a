package services

import (
	"context"
	"strings"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileInput struct {
	Name               string
	Phone              string
	DivisionID         string
	DistrictID         string
	SelectedDistrictID string
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Ensure returns the profile of an identity, creating a plain user profile on first sight.
func (s *ProfileService) Ensure(ctx context.Context, id uuid.UUID, name string) (*models.Profile, error) {
	profile := models.Profile{ID: id}
	err := s.db.WithContext(ctx).
		Where(models.Profile{ID: id}).
		Attrs(models.Profile{Name: strings.TrimSpace(name), Role: models.RoleUser}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

// Update changes the caller's own profile. Role is never touched here, and neither is the
// district of an admin: moderation scope is only assigned through SetRole.
func (s *ProfileService) Update(ctx context.Context, actor identity.Actor, in ProfileInput) (*models.Profile, error) {
	updates := map[string]interface{}{
		"name":                 strings.TrimSpace(in.Name),
		"phone":                strings.TrimSpace(in.Phone),
		"division_id":          strings.TrimSpace(in.DivisionID),
		"selected_district_id": strings.TrimSpace(in.SelectedDistrictID),
	}

	db := s.db.WithContext(ctx)
	var current models.Profile
	if err := db.Select("id", "role").First(&current, "id = ?", actor.ID).Error; err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	if !actor.IsAdmin() && current.Role == models.RoleUser {
		updates["district_id"] = strings.TrimSpace(in.DistrictID)
	}

	result := db.Model(&models.Profile{}).Where("id = ?", actor.ID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return s.Get(ctx, actor.ID)
}

// List returns profiles newest first for the user management screen.
func (s *ProfileService) List(ctx context.Context, actor identity.Actor, limit, offset int) ([]models.Profile, int64, error) {
	if err := requireScope(actor); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Profile{})
	if actor.IsDistrictAdmin() {
		query = query.Scopes(identity.ForDistrict(actor.DistrictID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// SetRole is reserved to full admins. A district admin must be bound to a district.
func (s *ProfileService) SetRole(ctx context.Context, actor identity.Actor, userID uuid.UUID, role models.Role, districtID string) (*models.Profile, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	updates := map[string]interface{}{"role": role}
	districtID = strings.TrimSpace(districtID)
	if role == models.RoleDistrictAdmin {
		if districtID == "" {
			return nil, ErrInvalidRole
		}
		updates["district_id"] = districtID
	}

	result := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return s.Get(ctx, userID)
}
