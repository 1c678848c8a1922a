package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired lets through full admins, district admins, and callers presenting the
// operator X-Admin-Token. Must run after LoadActor.
func AdminRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := identity.GetActor(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if cfg.AdminToken != "" {
			token := c.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) == 1 {
				actor.Role = models.RoleAdmin
				identity.SetActor(c, actor)
				return c.Next()
			}
		}

		if actor.IsAdmin() {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(item, val) {
			return true
		}
	}
	return false
}
