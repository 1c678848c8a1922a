package services

import (
	"context"
	"testing"

	"github.com/amarjela/district-backend/internal/schema"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(db, schema.NewDefaultRegistry())
	admin := adminActor(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin, CategoryInput{Name: " ডাক্তার ", SchemaKey: "doctor", Active: true, DisplayOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "ডাক্তার", created.Name)

	_, err = svc.Create(ctx, admin, CategoryInput{Name: "ডাক্তার", Active: true})
	assert.ErrorIs(t, err, ErrCategoryExists)

	// Renaming keeps the schema through the key.
	renamed, err := svc.Update(ctx, admin, created.ID, CategoryInput{Name: "Doctors", SchemaKey: "doctor", Active: true})
	require.NoError(t, err)
	_, cfg, err := svc.Schema(ctx, renamed.ID)
	require.NoError(t, err)
	assert.Equal(t, "doctor", cfg.Key)

	hidden, err := svc.SetActive(ctx, admin, created.ID, false)
	require.NoError(t, err)
	assert.False(t, hidden.Active)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, admin, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, admin, created.ID), ErrCategoryNotFound)
}

func TestCategoryValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(db, schema.NewDefaultRegistry())
	admin := adminActor(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, admin, CategoryInput{Name: "  "})
	assert.ErrorIs(t, err, ErrCategoryName)

	_, err = svc.Create(ctx, admin, CategoryInput{Name: "নতুন", SchemaKey: "spaceship"})
	assert.ErrorIs(t, err, ErrUnknownSchema)

	_, err = svc.Create(ctx, districtAdmin(t, db, "dhaka"), CategoryInput{Name: "নতুন"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetActive(ctx, admin, uuid.New(), true)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	// No schema key falls back to the display name lookup.
	cat, err := svc.Create(ctx, admin, CategoryInput{Name: "হাসপাতাল"})
	require.NoError(t, err)
	_, cfg, err := svc.Schema(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "hospital", cfg.Key)
}

func TestCategoryDelete_InUse(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(db, schema.NewDefaultRegistry())
	admin := adminActor(t, db)
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	testutil.CreateContent(t, db, cat.ID, "Hotel")

	assert.ErrorIs(t, svc.Delete(context.Background(), admin, cat.ID), ErrCategoryInUse)
}
