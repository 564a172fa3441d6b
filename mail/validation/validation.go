package validation

import (
	"strings"
	"unicode"

	"github.com/qolzam/mailrelay/mail/errors"
	"github.com/qolzam/mailrelay/mail/models"
)

// ValidateAddress checks the minimal local@domain.tld shape: exactly one @,
// a non-empty local part with no whitespace, and a domain containing at
// least one dot with no whitespace.
func ValidateAddress(address string) error {
	if strings.Count(address, "@") != 1 {
		return &errors.AddressError{Address: address}
	}

	parts := strings.SplitN(address, "@", 2)
	local, domain := parts[0], parts[1]

	if local == "" || containsWhitespace(local) {
		return &errors.AddressError{Address: address}
	}
	if !strings.Contains(domain, ".") || containsWhitespace(domain) {
		return &errors.AddressError{Address: address}
	}

	return nil
}

func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// ValidateAddressList checks every address in order and reports the first
// offending entry verbatim.
func ValidateAddressList(to models.AddressList) error {
	if len(to) == 0 {
		return &errors.FieldError{Field: "to"}
	}
	for _, addr := range to {
		if err := ValidateAddress(addr); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSendEmailRequest validates the send email request
func ValidateSendEmailRequest(req *models.SendEmailRequest) error {
	if req == nil {
		return errors.ErrInvalidRequest
	}

	if len(req.To) == 0 {
		return &errors.FieldError{Field: "to"}
	}
	if req.Subject == "" {
		return &errors.FieldError{Field: "subject"}
	}

	return ValidateAddressList(req.To)
}

// ValidateSendWelcomeRequest validates the send welcome request
func ValidateSendWelcomeRequest(req *models.SendWelcomeRequest) error {
	if req == nil {
		return errors.ErrInvalidRequest
	}

	if len(req.To) == 0 {
		return &errors.FieldError{Field: "to"}
	}
	if req.Name == "" {
		return &errors.FieldError{Field: "name"}
	}

	return ValidateAddressList(req.To)
}

// ValidateSendPasswordResetRequest validates the send password reset request
func ValidateSendPasswordResetRequest(req *models.SendPasswordResetRequest) error {
	if req == nil {
		return errors.ErrInvalidRequest
	}

	if len(req.To) == 0 {
		return &errors.FieldError{Field: "to"}
	}
	if req.ResetLink == "" {
		return &errors.FieldError{Field: "resetLink"}
	}

	return ValidateAddressList(req.To)
}

// ValidateSendNotificationRequest validates the send notification request
func ValidateSendNotificationRequest(req *models.SendNotificationRequest) error {
	if req == nil {
		return errors.ErrInvalidRequest
	}

	if len(req.To) == 0 {
		return &errors.FieldError{Field: "to"}
	}
	if req.Title == "" {
		return &errors.FieldError{Field: "title"}
	}
	if req.Message == "" {
		return &errors.FieldError{Field: "message"}
	}

	return ValidateAddressList(req.To)
}

// ValidateBulkSendRequest validates the bulk send request. Recipient
// addresses are deliberately not checked here: each one is validated inside
// the per-recipient dispatch loop so a bad entry fails alone instead of
// rejecting the whole batch.
func ValidateBulkSendRequest(req *models.BulkSendRequest) error {
	if req == nil {
		return errors.ErrInvalidRequest
	}

	if len(req.Recipients) == 0 {
		return &errors.FieldError{Field: "recipients"}
	}
	if req.Subject == "" {
		return &errors.FieldError{Field: "subject"}
	}

	return nil
}
