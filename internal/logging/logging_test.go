package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandler_StoresErrorRecords(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, time.Hour)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("status change failed",
		"user_id", "u-1",
		"content_id", "c-1",
		"action", "status_change",
		"error", "deadlock",
		"latency_ms", int64(42),
		"district", "dhaka",
	)
	h.Stop()
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	require.NotNil(t, entry.ContentID)
	assert.Equal(t, "c-1", *entry.ContentID)
	assert.Equal(t, "status_change", entry.Action)
	assert.Equal(t, "deadlock", entry.Error)
	assert.Equal(t, 42, entry.LatencyMs)
	assert.JSONEq(t, `{"district":"dhaka"}`, string(entry.Extra))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var info, errs bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h).With("content_id", "c-9")

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("listing approved")
	logger.Error("listing lost")

	assert.Contains(t, info.String(), "listing approved")
	assert.Contains(t, info.String(), "listing lost")
	assert.NotContains(t, errs.String(), "listing approved")
	assert.Contains(t, errs.String(), `"content_id":"c-9"`)
}

func TestCleanup(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now()
	require.NoError(t, db.Create(&models.SystemLog{Timestamp: now.Add(-40 * 24 * time.Hour), Level: "ERROR"}).Error)
	require.NoError(t, db.Create(&models.SystemLog{Timestamp: now, Level: "ERROR"}).Error)

	deleted, err := Cleanup(db, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestRequestLogger_LogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/boom", func(c *fiber.Ctx) error {
		RecordError(c, errors.New("db down"))
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), `"error":"db down"`)
	assert.Contains(t, buf.String(), `"path":"/boom"`)
}

func TestMultiHandler_AddsRequestAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewMultiHandler(slog.NewJSONHandler(&out, nil)))

	ctx := WithRequestAttrs(context.Background(), slog.String("request_id", "req-1"))
	ctx = WithRequestAttrs(ctx, slog.String("user_id", "u-1"))

	logger.InfoContext(ctx, "report filed", "user_id", "u-2")
	assert.Contains(t, out.String(), `"request_id":"req-1"`)
	assert.Contains(t, out.String(), `"user_id":"u-2"`)
	assert.Equal(t, 1, strings.Count(out.String(), `"user_id"`))

	out.Reset()
	logger.With("request_id", "bound").InfoContext(ctx, "content deleted")
	assert.Equal(t, 1, strings.Count(out.String(), `"request_id"`))
	assert.Contains(t, out.String(), `"request_id":"bound"`)
	assert.Contains(t, out.String(), `"user_id":"u-1"`)

	out.Reset()
	logger.Info("startup")
	assert.NotContains(t, out.String(), "request_id")
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_FailingSinkDoesNotSilenceOthers(t *testing.T) {
	var out bytes.Buffer
	stdout := slog.NewJSONHandler(&out, nil)
	h := NewMultiHandler(failingHandler{stdout}, stdout)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "listing lost", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, out.String(), "listing lost")
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(NewMultiHandler(slog.NewJSONHandler(&buf, nil))))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger())
	app.Post("/reports", func(c *fiber.Ctx) error {
		slog.InfoContext(c.UserContext(), "report filed")
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/reports", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
