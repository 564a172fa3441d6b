package services

import (
	"context"

	"github.com/qolzam/mailrelay/mail/models"
)

// MailService defines the interface for relay send operations
type MailService interface {
	// Direct send
	SendEmail(ctx context.Context, req *models.SendEmailRequest) (*models.SendReceipt, error)

	// Templated sends
	SendWelcome(ctx context.Context, req *models.SendWelcomeRequest) (*models.SendReceipt, error)
	SendPasswordReset(ctx context.Context, req *models.SendPasswordResetRequest) (*models.SendReceipt, error)
	SendNotification(ctx context.Context, req *models.SendNotificationRequest) (*models.SendReceipt, error)

	// Bulk send with per-recipient outcome accounting
	SendBulk(ctx context.Context, req *models.BulkSendRequest) (*models.BulkSendReport, error)
}
