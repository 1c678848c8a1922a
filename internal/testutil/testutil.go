// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amarjela/district-backend/internal/database"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := database.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewMockDB returns a gorm handle speaking the postgres dialect to a sqlmock connection.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := database.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	require.NoError(t, err)
	return db, mock
}

func CreateProfile(t *testing.T, db *gorm.DB, name string, role models.Role, districtID string) models.Profile {
	t.Helper()
	p := models.Profile{
		ID:         uuid.New(),
		Name:       name,
		Role:       role,
		DivisionID: "dhaka",
		DistrictID: districtID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func CreateCategory(t *testing.T, db *gorm.DB, name, schemaKey string) models.Category {
	t.Helper()
	c := models.Category{Name: name, SchemaKey: schemaKey, Active: true}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// ContentOption adjusts a fixture listing before it is stored.
type ContentOption func(*models.ContentItem)

func WithStatus(s models.ContentStatus) ContentOption {
	return func(c *models.ContentItem) { c.Status = s }
}

func WithSponsorship(until *time.Time) ContentOption {
	return func(c *models.ContentItem) {
		c.IsSponsored = true
		c.SponsoredUntil = until
	}
}

func WithCreatedAt(at time.Time) ContentOption {
	return func(c *models.ContentItem) { c.CreatedAt = at }
}

func WithDistrict(districtID string) ContentOption {
	return func(c *models.ContentItem) { c.DistrictID = districtID }
}

func CreateContent(t *testing.T, db *gorm.DB, categoryID uuid.UUID, title string, opts ...ContentOption) models.ContentItem {
	t.Helper()
	c := models.ContentItem{
		CategoryID:      categoryID,
		DistrictID:      "dhaka",
		DivisionID:      "dhaka",
		Title:           title,
		Metadata:        datatypes.NewJSONType(map[string]string{}),
		Status:          models.StatusApproved,
		SubmittedByName: "fixture",
		Version:         1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}
