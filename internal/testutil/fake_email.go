package testutil

import (
	"context"
	"fmt"
	"sync"

	platformemail "github.com/qolzam/mailrelay/internal/platform/email"
)

// FakeSender captures outbound messages in memory for tests. Failures can be
// injected per recipient address to exercise partial-failure paths.
type FakeSender struct {
	mu       sync.Mutex
	Sent     []platformemail.Message
	failFor  map[string]error
	attempts int
	counter  int
}

func NewFakeSender() *FakeSender {
	return &FakeSender{
		Sent:    make([]platformemail.Message, 0),
		failFor: make(map[string]error),
	}
}

// FailFor makes every send addressed to addr fail with err.
func (f *FakeSender) FailFor(addr string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFor[addr] = err
}

func (f *FakeSender) Send(ctx context.Context, msg platformemail.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts++
	for _, to := range msg.To {
		if err, ok := f.failFor[to]; ok {
			return "", err
		}
	}

	f.counter++
	f.Sent = append(f.Sent, msg)
	return fmt.Sprintf("test-message-id-%d", f.counter), nil
}

// LastSent returns the most recently accepted message, or nil.
func (f *FakeSender) LastSent() *platformemail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

// Attempts counts every Send call, accepted or not.
func (f *FakeSender) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

// SendCount counts accepted sends only.
func (f *FakeSender) SendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}

func (f *FakeSender) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = make([]platformemail.Message, 0)
	f.failFor = make(map[string]error)
	f.attempts = 0
	f.counter = 0
}
