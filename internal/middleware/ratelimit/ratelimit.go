// Package ratelimit provides the global request throttle for the relay API.
package ratelimit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/qolzam/mailrelay/internal/pkg/log"
)

// LimitMessage is returned verbatim whenever a caller exceeds the limit.
const LimitMessage = "Too many requests from this IP, please try again later."

// Default limits: 10 requests per 15 minutes per IP.
const (
	DefaultMaxRequests = 10
	DefaultWindow      = 15 * time.Minute
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// MaxRequests allowed per caller within Window
	MaxRequests int

	// Window is the fixed counting window
	Window time.Duration

	// Storage optionally backs the counters (e.g. Redis) so limits hold
	// across instances. Defaults to in-memory.
	Storage fiber.Storage

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional - uses default IP-based if not provided)
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

// configDefault sets default configuration values
func configDefault(config Config) Config {
	if config.MaxRequests <= 0 {
		config.MaxRequests = DefaultMaxRequests
	}
	if config.Window <= 0 {
		config.Window = DefaultWindow
	}

	// Callers are counted by IP alone: the same budget covers every
	// endpoint, so rotating paths does not reset the counter.
	if config.KeyGenerator == nil {
		config.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP()
		}
	}

	if config.LimitReached == nil {
		config.LimitReached = func(c *fiber.Ctx) error {
			log.Warn("[RateLimit] Rate limit exceeded from IP: %s", c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      LimitMessage,
				"code":       "RATE_LIMIT_EXCEEDED",
				"retryAfter": int(config.Window.Seconds()),
			})
		}
	}

	return config
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	// Apply default configuration
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          cfg.MaxRequests,
		Expiration:   cfg.Window,
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
		Storage:      cfg.Storage,
	})
}
