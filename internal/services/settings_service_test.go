package services

import (
	"context"
	"testing"

	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSettingsService(db)
	admin := adminActor(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	require.NoError(t, svc.SeedDefaults(ctx))

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(defaultSettings))
	assert.Equal(t, false, all["maintenance_mode"])
	assert.IsType(t, map[string]interface{}{}, all["developer_info"])

	_, err = svc.Set(ctx, admin, "maintenance_mode", "yes", "bool")
	assert.ErrorIs(t, err, ErrInvalidSetting)
	_, err = svc.Set(ctx, admin, "developer_info", "{broken", "json")
	assert.ErrorIs(t, err, ErrInvalidSetting)
	_, err = svc.Set(ctx, districtAdmin(t, db, "dhaka"), "app_name", "x", "")
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := svc.Set(ctx, admin, "maintenance_mode", "true", "bool")
	require.NoError(t, err)
	assert.Equal(t, "true", stored.Value)

	_, err = svc.Set(ctx, admin, "max_upload", "5", "int")
	require.NoError(t, err)

	all, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, all["maintenance_mode"])
	assert.Equal(t, 5, all["max_upload"])

	require.NoError(t, svc.Delete(ctx, admin, "max_upload"))
	assert.ErrorIs(t, svc.Delete(ctx, admin, "max_upload"), ErrSettingNotFound)
}
