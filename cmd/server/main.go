package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/amarjela/district-backend/internal/config"
	"github.com/amarjela/district-backend/internal/database"
	"github.com/amarjela/district-backend/internal/handlers"
	"github.com/amarjela/district-backend/internal/logging"
	"github.com/amarjela/district-backend/internal/metrics"
	"github.com/amarjela/district-backend/internal/middleware"
	"github.com/amarjela/district-backend/internal/routes"
	"github.com/amarjela/district-backend/internal/schema"
	"github.com/amarjela/district-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Category schemas
	registry := schema.NewDefaultRegistry()
	if cfg.SchemaConfigPath != "" {
		loaded, err := schema.LoadFromFile(cfg.SchemaConfigPath)
		if err != nil {
			slog.Error("failed to load category schemas", "path", cfg.SchemaConfigPath, "error", err)
			os.Exit(1)
		}
		registry = loaded
	}
	slog.Info("category schemas loaded", "schemas", len(registry.Keys()))

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if seeded, err := database.SeedCategories(db, registry); err != nil {
		slog.Error("category seed failed", "error", err)
		os.Exit(1)
	} else if seeded > 0 {
		slog.Info("categories seeded", "count", seeded)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	logging.Install(pgLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetention, cleanupDone)

	metrics.Register()

	// Services
	contentService := services.NewContentService(db, registry)
	moderationService := services.NewModerationService(db)
	reportService := services.NewReportService(db)
	categoryService := services.NewCategoryService(db, registry)
	reviewService := services.NewReviewService(db)
	savedService := services.NewSavedService(db)
	profileService := services.NewProfileService(db)
	settingsService := services.NewSettingsService(db)

	slog.Info("seeding app setting defaults")
	if err := settingsService.SeedDefaults(context.Background()); err != nil {
		slog.Error("settings seed failed", "error", err)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(logging.RequestLogger())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, profileService, routes.Handlers{
		Health:     handlers.NewHealthHandler(db, registry),
		Content:    handlers.NewContentHandler(contentService),
		Moderation: handlers.NewModerationHandler(contentService, moderationService, reportService),
		Category:   handlers.NewCategoryHandler(categoryService, registry),
		Engagement: handlers.NewEngagementHandler(reviewService, savedService),
		Profile:    handlers.NewProfileHandler(profileService),
		Settings:   handlers.NewSettingsHandler(settingsService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
