package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, sub string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"name": "Mitu",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAdminGate(t *testing.T) {
	db := testutil.NewDB(t)
	allowListed := uuid.New()
	local := testutil.CreateProfile(t, db, "Local", models.RoleDistrictAdmin, "dhaka")
	cfg := &config.Config{JWTSecret: "secret", AdminUserIDs: " " + allowListed.String() + " ,", AdminToken: "op"}

	app := fiber.New()
	app.Get("/admin", JWTProtected(cfg), LoadActor(services.NewProfileService(db), cfg), AdminRequired(cfg), func(c *fiber.Ctx) error {
		actor, ok := identity.GetActor(c)
		require.True(t, ok)
		return c.SendString(string(actor.Role))
	})

	call := func(sub string, headers ...string) int {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, "secret", sub))
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, call(allowListed.String()))
	assert.Equal(t, fiber.StatusOK, call(local.ID.String()))
	assert.Equal(t, fiber.StatusForbidden, call(uuid.NewString()))
	assert.Equal(t, fiber.StatusOK, call(uuid.NewString(), "X-Admin-Token", "op"))
	assert.Equal(t, fiber.StatusForbidden, call(uuid.NewString(), "X-Admin-Token", "nope"))
	assert.Equal(t, fiber.StatusUnauthorized, call("not-a-uuid"))

	// The allow-list does not rewrite the stored role.
	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", allowListed).Error)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Equal(t, "Mitu", stored.Name)
}

func TestJWTProtected_RejectsForeignSignature(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	app := fiber.New()
	app.Get("/", JWTProtected(cfg), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "other-secret", uuid.NewString()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"a", "b"}, parseCSV(" a, ,b "))
}
