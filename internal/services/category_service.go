package services

import (
	"context"
	"strings"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name         string
	SchemaKey    string
	Icon         string
	GroupName    string
	Color        string
	Active       bool
	DisplayOrder int
}

type CategoryService struct {
	db       *gorm.DB
	registry *schema.Registry
}

func NewCategoryService(db *gorm.DB, registry *schema.Registry) *CategoryService {
	return &CategoryService{db: db, registry: registry}
}

// ListActive returns the categories shown to users, in display order.
func (s *CategoryService) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Where("active = ?", true).Order("display_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) ListAll(ctx context.Context, actor identity.Actor) ([]models.Category, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("display_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return &category, nil
}

// Schema resolves the form schema of a stored category.
func (s *CategoryService) Schema(ctx context.Context, id uuid.UUID) (*models.Category, schema.Config, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, schema.Config{}, err
	}
	return category, s.registry.Resolve(category.SchemaKey, category.Name), nil
}

func (s *CategoryService) Create(ctx context.Context, actor identity.Actor, in CategoryInput) (*models.Category, error) {
	if err := s.checkInput(actor, &in); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:         in.Name,
		SchemaKey:    in.SchemaKey,
		Icon:         in.Icon,
		GroupName:    in.GroupName,
		Color:        in.Color,
		Active:       in.Active,
		DisplayOrder: in.DisplayOrder,
	}

	db := s.db.WithContext(ctx)
	if err := s.ensureUniqueName(db, in.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if err := db.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, in CategoryInput) (*models.Category, error) {
	if err := s.checkInput(actor, &in); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(db, in.Name, id); err != nil {
		return nil, err
	}

	err = db.Model(category).Updates(map[string]interface{}{
		"name":          in.Name,
		"schema_key":    in.SchemaKey,
		"icon":          in.Icon,
		"group_name":    in.GroupName,
		"color":         in.Color,
		"active":        in.Active,
		"display_order": in.DisplayOrder,
	}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CategoryService) SetActive(ctx context.Context, actor identity.Actor, id uuid.UUID, active bool) (*models.Category, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	result := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCategoryNotFound
	}
	return s.Get(ctx, id)
}

// Delete refuses to drop a category that still has listings.
func (s *CategoryService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&models.ContentItem{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return ErrCategoryInUse
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// Only full admins manage categories.
func (s *CategoryService) checkInput(actor identity.Actor, in *CategoryInput) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.SchemaKey = strings.TrimSpace(in.SchemaKey)
	if in.Name == "" {
		return ErrCategoryName
	}
	if in.SchemaKey != "" && !s.registry.Exists(in.SchemaKey) {
		return ErrUnknownSchema
	}
	return nil
}

func (s *CategoryService) ensureUniqueName(db *gorm.DB, name string, except uuid.UUID) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("name = ? AND id <> ?", name, except).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryExists
	}
	return nil
}
