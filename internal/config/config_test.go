package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("LOG_RETENTION", "")
	t.Setenv("API_RATE_LIMIT", "")

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 30*24*time.Hour, cfg.LogRetention)
	assert.Equal(t, 60, cfg.APIRateLimit)
	assert.Equal(t, 10, cfg.SubmitRateLimit)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("LOG_RETENTION", "48h")
	t.Setenv("SUBMIT_RATE_LIMIT", "3")
	t.Setenv("SCHEMA_CONFIG_PATH", "/etc/schemas.json")

	cfg := Load()
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 48*time.Hour, cfg.LogRetention)
	assert.Equal(t, 3, cfg.SubmitRateLimit)
	assert.Equal(t, "/etc/schemas.json", cfg.SchemaConfigPath)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, parseDuration("soon"))
	assert.Equal(t, 5, parseInt("-1", 5))
	assert.Equal(t, 7, parseInt("7", 5))
}
