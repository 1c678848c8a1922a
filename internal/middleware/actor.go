package middleware

import (
	"log/slog"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/logging"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// LoadActor resolves the verified token subject to a profile, creating it on first
// request, and stores the resulting actor on the context. IDs in ADMIN_USER_IDS act
// as full admins whatever their stored role.
func LoadActor(profiles *services.ProfileService, cfg *config.Config) fiber.Handler {
	adminUserIDs := parseCSV(cfg.AdminUserIDs)

	return func(c *fiber.Ctx) error {
		claims, err := identity.GetClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		userID, err := identity.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid token subject",
			})
		}

		profile, err := profiles.Ensure(c.UserContext(), userID, identity.DisplayName(claims))
		if err != nil {
			slog.ErrorContext(c.UserContext(), "failed to load profile", "user_id", userID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		actor := identity.FromProfile(*profile)
		if contains(adminUserIDs, userID.String()) {
			actor.Role = models.RoleAdmin
		}
		identity.SetActor(c, actor)
		c.SetUserContext(logging.WithRequestAttrs(c.UserContext(), slog.String("user_id", userID.String())))

		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.Scope().SetUser(sentry.User{ID: userID.String()})
		}
		return c.Next()
	}
}
