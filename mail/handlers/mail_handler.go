package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	platformconfig "github.com/qolzam/mailrelay/internal/platform/config"
	"github.com/qolzam/mailrelay/mail/errors"
	"github.com/qolzam/mailrelay/mail/models"
	"github.com/qolzam/mailrelay/mail/services"
	"github.com/qolzam/mailrelay/mail/templates"
	"github.com/qolzam/mailrelay/mail/validation"
)

// MailHandler handles all relay HTTP requests
type MailHandler struct {
	mailService services.MailService
	config      *platformconfig.Config
}

// NewMailHandler creates a new MailHandler with injected dependencies
func NewMailHandler(mailService services.MailService, config *platformconfig.Config) *MailHandler {
	return &MailHandler{
		mailService: mailService,
		config:      config,
	}
}

// AvailableEndpoints lists every route the relay serves. The unmatched-route
// response returns it verbatim.
var AvailableEndpoints = []string{
	"GET /health",
	"POST /send-email",
	"POST /send-welcome",
	"POST /send-password-reset",
	"POST /send-notification",
	"POST /send-bulk",
	"GET /templates",
}

// Health reports liveness. It never consults the provider.
func (h *MailHandler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// SendEmail handles POST /send-email
func (h *MailHandler) SendEmail(c *fiber.Ctx) error {
	var req models.SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateSendEmailRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	receipt, err := h.mailService.SendEmail(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(receipt)
}

// SendWelcome handles POST /send-welcome
func (h *MailHandler) SendWelcome(c *fiber.Ctx) error {
	var req models.SendWelcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateSendWelcomeRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	receipt, err := h.mailService.SendWelcome(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(receipt)
}

// SendPasswordReset handles POST /send-password-reset
func (h *MailHandler) SendPasswordReset(c *fiber.Ctx) error {
	var req models.SendPasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateSendPasswordResetRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	receipt, err := h.mailService.SendPasswordReset(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(receipt)
}

// SendNotification handles POST /send-notification
func (h *MailHandler) SendNotification(c *fiber.Ctx) error {
	var req models.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateSendNotificationRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	receipt, err := h.mailService.SendNotification(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(receipt)
}

// SendBulk handles POST /send-bulk. Partial failures still answer 200; the
// report carries the per-recipient outcomes.
func (h *MailHandler) SendBulk(c *fiber.Ctx) error {
	var req models.BulkSendRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateBulkSendRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	report, err := h.mailService.SendBulk(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(report)
}

// GetTemplates handles GET /templates
func (h *MailHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": templates.Catalog(),
		"note":      templates.UsageNote,
	})
}

// NotFound answers unmatched routes with the endpoint catalog
func (h *MailHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{
		"error":              "Route not found",
		"code":               errors.CodeNotFound,
		"availableEndpoints": AvailableEndpoints,
	})
}
