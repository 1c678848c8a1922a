package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig is shared by the production connection and the test databases. Foreign key
// constraints are not created; deletes cascade in the service layer inside a transaction.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Category{},
		&models.ContentItem{},
		&models.Report{},
		&models.ModerationAction{},
		&models.Review{},
		&models.SavedItem{},
		&models.AppSetting{},
		&models.SystemLog{},
	)
}

// SeedCategories creates one active category per registered schema when the categories
// table is empty. Existing installations are left alone.
func SeedCategories(db *gorm.DB, registry *schema.Registry) (int, error) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	configs := registry.All()
	categories := make([]models.Category, 0, len(configs))
	for i, cfg := range configs {
		categories = append(categories, models.Category{
			Name:         cfg.Name,
			SchemaKey:    cfg.Key,
			Active:       true,
			DisplayOrder: i + 1,
		})
	}
	if err := db.Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	return len(categories), nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
