package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT issued by the identity provider (HS256 shared secret)
	JWTSecret string

	// Admin
	AdminUserIDs string
	AdminToken   string

	// Server
	Port        string
	CORSOrigins string
	BodyLimit   int

	// Rate limits per IP and minute
	APIRateLimit    int
	SubmitRateLimit int

	// Category schemas layered over the built-in ones
	SchemaConfigPath string

	LogRetention time.Duration

	// Error tracking
	SentryDSN string
	AppEnv    string
}

// Load reads the environment, picking up a .env file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "amar_jela"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AdminUserIDs: getEnv("ADMIN_USER_IDS", ""),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		BodyLimit:   parseInt(getEnv("BODY_LIMIT", "1048576"), 1<<20),

		APIRateLimit:    parseInt(getEnv("API_RATE_LIMIT", "60"), 60),
		SubmitRateLimit: parseInt(getEnv("SUBMIT_RATE_LIMIT", "10"), 10),

		SchemaConfigPath: getEnv("SCHEMA_CONFIG_PATH", ""),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h")),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
