package services

import (
	"testing"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/testutil"
	"gorm.io/gorm"
)

func adminActor(t *testing.T, db *gorm.DB) identity.Actor {
	t.Helper()
	return identity.FromProfile(testutil.CreateProfile(t, db, "Root", models.RoleAdmin, ""))
}

func districtAdmin(t *testing.T, db *gorm.DB, districtID string) identity.Actor {
	t.Helper()
	return identity.FromProfile(testutil.CreateProfile(t, db, "Local "+districtID, models.RoleDistrictAdmin, districtID))
}

func userActor(t *testing.T, db *gorm.DB, name string) identity.Actor {
	t.Helper()
	return identity.FromProfile(testutil.CreateProfile(t, db, name, models.RoleUser, "dhaka"))
}
