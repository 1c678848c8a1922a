package routes

import (
	"time"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/handlers"
	"github.com/amarjela/district-backend/internal/middleware"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Content    *handlers.ContentHandler
	Moderation *handlers.ModerationHandler
	Category   *handlers.CategoryHandler
	Engagement *handlers.EngagementHandler
	Profile    *handlers.ProfileHandler
	Settings   *handlers.SettingsHandler
}

func Setup(app *fiber.App, cfg *config.Config, profiles *services.ProfileService, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter per IP
	api.Use(perMinute(cfg.APIRateLimit))

	// Public
	api.Get("/health", h.Health.Check)
	api.Get("/settings", h.Settings.GetSettings)
	api.Get("/categories", h.Category.ListActive)
	api.Get("/categories/:id/schema", h.Category.Schema)
	api.Get("/category-config", h.Category.ConfigByName)
	api.Get("/schemas", h.Category.Schemas)

	// Authenticated routes get the middleware per route so public paths stay open.
	jwt := middleware.JWTProtected(cfg)
	actor := middleware.LoadActor(profiles, cfg)

	// Writes that reach moderators get the stricter limit, counted per route

	api.Get("/me", jwt, actor, h.Profile.Me)
	api.Put("/me", jwt, actor, h.Profile.UpdateMe)

	api.Get("/content", jwt, actor, h.Content.Browse)
	api.Get("/content/search", jwt, actor, h.Content.Search)
	api.Post("/content", jwt, actor, perMinute(cfg.SubmitRateLimit), h.Content.Submit)
	api.Get("/content/:id", jwt, actor, h.Content.Get)
	api.Post("/content/:id/view", jwt, actor, h.Content.RecordView)
	api.Post("/content/:id/call", jwt, actor, h.Content.RecordCall)
	api.Get("/content/:id/reviews", jwt, actor, h.Engagement.ListReviews)
	api.Put("/content/:id/reviews", jwt, actor, h.Engagement.UpsertReview)

	api.Post("/reports", jwt, actor, perMinute(cfg.SubmitRateLimit), h.Moderation.CreateReport)

	api.Get("/saved", jwt, actor, h.Engagement.ListSaved)
	api.Post("/saved/:content_id", jwt, actor, h.Engagement.ToggleSaved)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", jwt, actor, middleware.AdminRequired(cfg))
	admin.Get("/stats", h.Moderation.Stats)

	admin.Get("/content", h.Moderation.ListContent)
	admin.Post("/content", h.Moderation.CreateContent)
	admin.Put("/content/:id", h.Moderation.UpdateContent)
	admin.Put("/content/:id/status", h.Moderation.SetStatus)
	admin.Delete("/content/:id", h.Moderation.DeleteContent)
	admin.Get("/content/:id/history", h.Moderation.History)

	admin.Get("/reports", h.Moderation.ListReports)
	admin.Put("/reports/:id", h.Moderation.ResolveReport)

	admin.Get("/categories", h.Category.ListAll)
	admin.Post("/categories", h.Category.Create)
	admin.Put("/categories/:id", h.Category.Update)
	admin.Put("/categories/:id/active", h.Category.Toggle)
	admin.Delete("/categories/:id", h.Category.Delete)

	admin.Get("/users", h.Profile.ListUsers)
	admin.Put("/users/:id/role", h.Profile.SetRole)

	admin.Put("/settings/:key", h.Settings.SetSetting)
	admin.Delete("/settings/:key", h.Settings.DeleteSetting)
}

func perMinute(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
