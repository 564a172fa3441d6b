package email

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/qolzam/mailrelay/internal/pkg/log"
)

// LogSender writes messages to the application log instead of delivering
// them. It is the default provider for local development.
type LogSender struct {
	debug bool
}

// NewLogSender creates a log-backed sender. When debug is true the full
// message body is dumped alongside the envelope line.
func NewLogSender(debug bool) *LogSender {
	return &LogSender{debug: debug}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	id := fmt.Sprintf("log-%s", uuid.Must(uuid.NewV4()).String())

	log.InfoWithContext(ctx, "email (not sent): id=%s from=%s to=%v subject=%q", id, msg.From, msg.To, msg.Subject)
	if s.debug {
		log.InfoStruct(msg)
	}

	return id, nil
}
