package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/qolzam/mailrelay/internal/cache"
	"github.com/qolzam/mailrelay/internal/middleware/ratelimit"
	"github.com/qolzam/mailrelay/internal/middleware/requestid"
	platformconfig "github.com/qolzam/mailrelay/internal/platform/config"
	platformemail "github.com/qolzam/mailrelay/internal/platform/email"
	"github.com/qolzam/mailrelay/mail"
	"github.com/qolzam/mailrelay/mail/handlers"
	"github.com/qolzam/mailrelay/mail/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Disable default error handler that might interfere with custom responses
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ErrorHandler] Path: %s, Error: %v, Code: %d, ResponseSet: %d bytes",
				c.Path(), err, code, len(c.Response().Body()))

			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			// Client errors keep fiber's message; server faults never leak internals
			message := "An unexpected error occurred"
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				message = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error": message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	// CORS configuration for browser direct access, any origin
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	limiterConfig := ratelimit.Config{
		MaxRequests: cfg.RateLimit.MaxRequests,
		Window:      cfg.RateLimit.Window,
	}
	if cfg.Redis.Address != "" {
		storage, err := cache.NewRedisStorage(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect rate limit storage: %v", err)
		}
		limiterConfig.Storage = storage
		log.Printf("Rate limiting backed by Redis at %s", cfg.Redis.Address)
	}
	app.Use(ratelimit.New(limiterConfig))

	sender, err := platformemail.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize email provider: %v", err)
	}

	mailService := services.NewMailService(sender, cfg)
	mailHandler := handlers.NewMailHandler(mailService, cfg)

	mailHandlers := &mail.MailHandlers{
		MailHandler: mailHandler,
	}

	mail.RegisterRoutes(app, mailHandlers, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting %s (provider: %s) on %s", cfg.App.Name, cfg.Email.Provider, addr)
	log.Fatal(app.Listen(addr))
}
