package ratelimit

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Post("/send-email", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})
	return app
}

func TestRateLimit_AllowsRequestsWithinLimit(t *testing.T) {
	app := newLimitedApp(Config{MaxRequests: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.168.1.1:9099"

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestRateLimit_RejectsExcessiveRequests(t *testing.T) {
	app := newLimitedApp(Config{MaxRequests: 3, Window: time.Minute})

	// Exhaust the budget
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.168.1.1:9099"

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()
	}

	// 4th request should be rate limited
	req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.168.1.1:9099"

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), LimitMessage)
	assert.Contains(t, string(body), "RATE_LIMIT_EXCEEDED")
	assert.Contains(t, string(body), "retryAfter")
	resp.Body.Close()
}

func TestRateLimit_SharesBudgetAcrossEndpoints(t *testing.T) {
	app := newLimitedApp(Config{MaxRequests: 2, Window: time.Minute})

	// Spend the whole budget on one endpoint
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.168.1.1:9099"

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()
	}

	// A different endpoint from the same IP is still over budget
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.168.1.1:9099"

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	resp.Body.Close()
}

func TestRateLimit_DifferentIPs_IndependentLimits(t *testing.T) {
	app := newLimitedApp(Config{MaxRequests: 2, Window: time.Minute})

	// Exhaust the budget for the first caller
	firstIPRequests := 0
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.168.1.1:9099"

		resp, err := app.Test(req)
		require.NoError(t, err)
		if resp.StatusCode == 200 {
			firstIPRequests++
		}
		resp.Body.Close()
	}
	assert.Equal(t, 2, firstIPRequests)

	// A second caller keys its own budget (separate app instance to avoid
	// cross-contamination)
	app2 := newLimitedApp(Config{MaxRequests: 2, Window: time.Minute})

	req := httptest.NewRequest("POST", "/send-email", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.168.1.2:9099"

	resp, err := app2.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()
}

func TestRateLimit_DefaultConfiguration(t *testing.T) {
	cfg := configDefault(Config{})

	assert.Equal(t, DefaultMaxRequests, cfg.MaxRequests)
	assert.Equal(t, DefaultWindow, cfg.Window)
	assert.NotNil(t, cfg.KeyGenerator)
	assert.NotNil(t, cfg.LimitReached)
}
