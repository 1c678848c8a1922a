package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultSettings = []models.AppSetting{
	{Key: "app_name", Value: "আমার জেলা", Type: "string"},
	{Key: "maintenance_mode", Value: "false", Type: "bool"},
	{Key: "developer_info", Value: `{"name":"","phone":"","email":""}`, Type: "json"},
	{Key: "announcement_message", Value: "", Type: "string"},
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// All returns every setting decoded to its declared type.
func (s *SettingsService) All(ctx context.Context) (map[string]interface{}, error) {
	var settings []models.AppSetting
	if err := s.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}

	result := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		result[setting.Key] = decodeSetting(setting)
	}
	return result, nil
}

// Set creates or replaces a setting after checking the value parses as its type.
func (s *SettingsService) Set(ctx context.Context, actor identity.Actor, key, value, typ string) (*models.AppSetting, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	key = strings.TrimSpace(key)
	if typ == "" {
		typ = "string"
	}
	if key == "" || !validSetting(value, typ) {
		return nil, ErrInvalidSetting
	}

	setting := models.AppSetting{ID: uuid.New(), Key: key, Value: value, Type: typ, UpdatedAt: time.Now()}
	db := s.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}

	var stored models.AppSetting
	if err := db.Where("key = ?", key).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *SettingsService) Delete(ctx context.Context, actor identity.Actor, key string) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	result := s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.AppSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

// SeedDefaults creates the default settings that do not exist yet.
func (s *SettingsService) SeedDefaults(ctx context.Context) error {
	for _, setting := range defaultSettings {
		setting := setting
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func validSetting(value, typ string) bool {
	switch typ {
	case "string":
		return true
	case "bool":
		_, err := strconv.ParseBool(value)
		return err == nil
	case "int":
		_, err := strconv.Atoi(value)
		return err == nil
	case "json":
		return json.Valid([]byte(value))
	}
	return false
}

func decodeSetting(setting models.AppSetting) interface{} {
	switch setting.Type {
	case "bool":
		v, _ := strconv.ParseBool(setting.Value)
		return v
	case "int":
		v, _ := strconv.Atoi(setting.Value)
		return v
	case "json":
		var v interface{}
		if err := json.Unmarshal([]byte(setting.Value), &v); err != nil {
			return setting.Value
		}
		return v
	}
	return setting.Value
}
