package mail

import (
	"github.com/gofiber/fiber/v2"

	platformconfig "github.com/qolzam/mailrelay/internal/platform/config"
	"github.com/qolzam/mailrelay/mail/handlers"
)

// MailHandlers holds all the handlers this router needs.
type MailHandlers struct {
	MailHandler *handlers.MailHandler
}

// RegisterRoutes is the single entry point for setting up relay routes.
func RegisterRoutes(app *fiber.App, handlers *MailHandlers, cfg *platformconfig.Config) {
	app.Get("/health", handlers.MailHandler.Health)

	app.Post("/send-email", handlers.MailHandler.SendEmail)
	app.Post("/send-welcome", handlers.MailHandler.SendWelcome)
	app.Post("/send-password-reset", handlers.MailHandler.SendPasswordReset)
	app.Post("/send-notification", handlers.MailHandler.SendNotification)
	app.Post("/send-bulk", handlers.MailHandler.SendBulk)

	app.Get("/templates", handlers.MailHandler.GetTemplates)

	// Catch-all, registered last so every unmatched method and path lands here
	app.Use(handlers.MailHandler.NotFound)
}
