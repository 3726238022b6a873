package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"logistics-rates/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, limit int, window time.Duration) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	app := fiber.New()
	app.Use(Middleware(NewFixedWindowLimiter(adapter, limit, window)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	return app, mr
}

// TestMiddleware_AllowsAndSetsHeaders verifies allowed requests carry the
// rate-limit headers.
func TestMiddleware_AllowsAndSetsHeaders(t *testing.T) {
	app, _ := newTestApp(t, 5, time.Minute)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "5", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", resp.Header.Get("X-RateLimit-Remaining"))
}

// TestMiddleware_RejectsOverLimit verifies the 429 envelope and Retry-After.
func TestMiddleware_RejectsOverLimit(t *testing.T) {
	app, _ := newTestApp(t, 1, time.Minute)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests", body["error"])
}

// TestMiddleware_FailsOpen verifies requests pass when redis is unreachable.
func TestMiddleware_FailsOpen(t *testing.T) {
	app, mr := newTestApp(t, 1, time.Minute)
	mr.Close()

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
