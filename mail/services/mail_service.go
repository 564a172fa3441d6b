package services

import (
	"context"
	"fmt"

	"github.com/qolzam/mailrelay/internal/pkg/log"
	platformconfig "github.com/qolzam/mailrelay/internal/platform/config"
	platformemail "github.com/qolzam/mailrelay/internal/platform/email"
	mailErrors "github.com/qolzam/mailrelay/mail/errors"
	"github.com/qolzam/mailrelay/mail/models"
	"github.com/qolzam/mailrelay/mail/templates"
	"github.com/qolzam/mailrelay/mail/validation"
)

// mailService implements the MailService interface
type mailService struct {
	sender platformemail.Sender
	config *platformconfig.Config
}

// NewMailService creates a new mail service backed by the given provider sender
func NewMailService(sender platformemail.Sender, config *platformconfig.Config) MailService {
	return &mailService{
		sender: sender,
		config: config,
	}
}

// buildMessage assembles an outbound message, applying the relay defaults:
// text falls back to the subject, html to "<p>{text}</p>", and from to the
// configured sender address.
func (s *mailService) buildMessage(from string, to []string, subject, html, text string) platformemail.Message {
	if text == "" {
		text = subject
	}
	if html == "" {
		html = fmt.Sprintf("<p>%s</p>", text)
	}
	if from == "" {
		from = s.config.Email.DefaultFrom
	}

	return platformemail.Message{
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}
}

// dispatch hands the message to the provider and converts the result into a
// receipt or a wrapped provider error.
func (s *mailService) dispatch(ctx context.Context, msg platformemail.Message) (*models.SendReceipt, error) {
	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		log.ErrorWithContext(ctx, "provider rejected send to %v: %v", msg.To, err)
		return nil, mailErrors.WrapProviderError(err)
	}

	log.InfoWithContext(ctx, "sent %q to %v (message id %s)", msg.Subject, msg.To, id)
	return &models.SendReceipt{Success: true, MessageID: id}, nil
}

// SendEmail relays a caller-composed message
func (s *mailService) SendEmail(ctx context.Context, req *models.SendEmailRequest) (*models.SendReceipt, error) {
	msg := s.buildMessage(req.From, req.To, req.Subject, req.HTML, req.Text)
	return s.dispatch(ctx, msg)
}

// SendWelcome renders and relays the welcome template
func (s *mailService) SendWelcome(ctx context.Context, req *models.SendWelcomeRequest) (*models.SendReceipt, error) {
	rendered := templates.Welcome(req.Name, s.config.App.OrgName)
	subject := fmt.Sprintf("Welcome to %s!", s.config.App.OrgName)

	msg := s.buildMessage("", req.To, subject, rendered.HTML, rendered.Text)
	return s.dispatch(ctx, msg)
}

// SendPasswordReset renders and relays the password reset template
func (s *mailService) SendPasswordReset(ctx context.Context, req *models.SendPasswordResetRequest) (*models.SendReceipt, error) {
	rendered := templates.PasswordReset(req.ResetLink)

	msg := s.buildMessage("", req.To, "Reset your password", rendered.HTML, rendered.Text)
	return s.dispatch(ctx, msg)
}

// SendNotification renders and relays the notification template. The title
// doubles as the subject.
func (s *mailService) SendNotification(ctx context.Context, req *models.SendNotificationRequest) (*models.SendReceipt, error) {
	rendered := templates.Notification(req.Title, req.Message)

	msg := s.buildMessage("", req.To, req.Title, rendered.HTML, rendered.Text)
	return s.dispatch(ctx, msg)
}

// SendBulk folds over the recipients strictly in submission order. Each
// recipient is validated, personalized, and dispatched independently; a
// failure becomes an errors entry and never aborts the remaining sends.
func (s *mailService) SendBulk(ctx context.Context, req *models.BulkSendRequest) (*models.BulkSendReport, error) {
	report := &models.BulkSendReport{
		Results: make([]models.SendOutcome, 0, len(req.Recipients)),
		Errors:  make([]models.SendOutcome, 0),
	}

	for _, recipient := range req.Recipients {
		outcome := s.sendToRecipient(ctx, req, recipient)
		if outcome.Success {
			report.Results = append(report.Results, outcome)
		} else {
			report.Errors = append(report.Errors, outcome)
		}
	}

	report.TotalSent = len(report.Results)
	report.TotalFailed = len(report.Errors)
	report.Success = report.TotalFailed == 0

	log.InfoWithContext(ctx, "bulk send finished: %d sent, %d failed", report.TotalSent, report.TotalFailed)
	return report, nil
}

func (s *mailService) sendToRecipient(ctx context.Context, req *models.BulkSendRequest, recipient models.Recipient) models.SendOutcome {
	if err := validation.ValidateAddress(recipient.Email); err != nil {
		return models.SendOutcome{Email: recipient.Email, Error: err.Error()}
	}

	// Defaults apply before personalization so a {{name}} in the subject
	// carries into a generated body.
	msg := s.buildMessage(req.From, []string{recipient.Email}, req.Subject, req.HTML, req.Text)
	msg.Subject = templates.ApplyName(msg.Subject, recipient.Name)
	msg.HTML = templates.ApplyName(msg.HTML, recipient.Name)
	msg.Text = templates.ApplyName(msg.Text, recipient.Name)

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		log.WarnWithContext(ctx, "bulk send to %s failed: %v", recipient.Email, err)
		return models.SendOutcome{Email: recipient.Email, Error: err.Error()}
	}

	return models.SendOutcome{Email: recipient.Email, Success: true, MessageID: id}
}
