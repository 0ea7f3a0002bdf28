package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/api/skills", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/skills?role=dev", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/fail", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.InfoLevel, ok.Level)
	assert.Equal(t, "HTTP request", ok.Message)
	fields := ok.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/skills", fields["path"])
	assert.EqualValues(t, fiber.StatusOK, fields["status"])

	failed := entries[1]
	assert.Equal(t, zapcore.ErrorLevel, failed.Level)
	assert.EqualValues(t, fiber.StatusInternalServerError, failed.ContextMap()["status"])
	assert.Equal(t, "boom", failed.ContextMap()["error"])
}
