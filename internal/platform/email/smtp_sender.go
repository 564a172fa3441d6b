package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gofrs/uuid"
)

// SMTPSender delivers messages through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

// NewSMTPSender creates a new SMTP sender. Host and port are required.
func NewSMTPSender(host, port, username, password string) (*SMTPSender, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password}, nil
}

// Send builds a simple RFC 822 message and hands it to the relay.
// SMTP assigns no message id, so a local one is generated.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	body := msg.HTML
	contentType := "text/html"
	if body == "" {
		body = msg.Text
		contentType = "text/plain"
	}

	headers := ""
	headers += fmt.Sprintf("From: %s\r\n", msg.From)
	headers += fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", "))
	headers += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	headers += fmt.Sprintf("MIME-version: 1.0\r\nContent-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType)

	if err := smtp.SendMail(addr, auth, msg.From, msg.To, []byte(headers+body)); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	id := uuid.Must(uuid.NewV4())
	return fmt.Sprintf("<%s@%s>", id.String(), s.host), nil
}
