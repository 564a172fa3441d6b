package email

import (
	"fmt"
	"strconv"

	"github.com/qolzam/mailrelay/internal/platform/config"
)

// NewFromConfig builds the sender selected by EMAIL_PROVIDER. Credential
// validation happens here so a misconfigured provider fails at startup
// rather than on the first request.
func NewFromConfig(cfg *config.Config) (Sender, error) {
	switch cfg.Email.Provider {
	case config.ProviderResend:
		return NewResendSender(cfg.Email.ResendAPIKey)
	case config.ProviderPostmark:
		return NewPostmarkSender(cfg.Email.PostmarkServerToken, cfg.Email.PostmarkAccountToken)
	case config.ProviderSMTP:
		return NewSMTPSender(cfg.Email.SMTPHost, strconv.Itoa(cfg.Email.SMTPPort), cfg.Email.SMTPUser, cfg.Email.SMTPPass)
	case config.ProviderLog:
		return NewLogSender(cfg.App.Debug), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %q", cfg.Email.Provider)
	}
}
