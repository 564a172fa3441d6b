package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers messages through the Postmark API.
type PostmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed sender. The server token is
// required; the account token is only needed for account-level endpoints and
// may be empty.
func NewPostmarkSender(serverToken, accountToken string) (*PostmarkSender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("postmark server token is required")
	}
	return &PostmarkSender{client: postmark.NewClient(serverToken, accountToken)}, nil
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) (string, error) {
	email := postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ", "),
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	}

	resp, err := s.client.SendEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("postmark: failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("postmark: send rejected (code %d): %s", resp.ErrorCode, resp.Message)
	}

	return resp.MessageID, nil
}
