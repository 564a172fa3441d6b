package email

import "context"

// Message represents an email to be sent.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender abstracts email sending for DI and testing.
// Send returns the provider-assigned message id on success.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
