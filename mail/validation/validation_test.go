package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailErrors "github.com/qolzam/mailrelay/mail/errors"
	"github.com/qolzam/mailrelay/mail/models"
)

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@example.com",
		"user+tag@sub.domain.org",
		"UPPER@EXAMPLE.COM",
	}
	for _, addr := range valid {
		assert.NoError(t, ValidateAddress(addr), "expected %q to be accepted", addr)
	}

	invalid := []string{
		"",
		"plainaddress",
		"user@@example.com",
		"two@ats@example.com",
		"@example.com",
		"user name@example.com",
		"user@domain",
		"user@doma in.com",
		"user@domain.com ",
		"user@",
	}
	for _, addr := range invalid {
		err := ValidateAddress(addr)
		require.Error(t, err, "expected %q to be rejected", addr)

		var addrErr *mailErrors.AddressError
		require.True(t, errors.As(err, &addrErr))
		assert.Equal(t, addr, addrErr.Address)
	}
}

func TestValidateAddressList_ReportsFirstBadEntry(t *testing.T) {
	t.Parallel()

	err := ValidateAddressList(models.AddressList{"good@example.com", "broken", "also-broken"})
	require.Error(t, err)

	var addrErr *mailErrors.AddressError
	require.True(t, errors.As(err, &addrErr))
	assert.Equal(t, "broken", addrErr.Address)
}

func TestValidateSendEmailRequest(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete request", func(t *testing.T) {
		t.Parallel()
		err := ValidateSendEmailRequest(&models.SendEmailRequest{
			To:      models.AddressList{"user@example.com"},
			Subject: "hello",
		})
		assert.NoError(t, err)
	})

	t.Run("requires to", func(t *testing.T) {
		t.Parallel()
		err := ValidateSendEmailRequest(&models.SendEmailRequest{Subject: "hello"})
		assertFieldError(t, err, "to")
	})

	t.Run("requires subject", func(t *testing.T) {
		t.Parallel()
		err := ValidateSendEmailRequest(&models.SendEmailRequest{
			To: models.AddressList{"user@example.com"},
		})
		assertFieldError(t, err, "subject")
	})

	t.Run("checks every address", func(t *testing.T) {
		t.Parallel()
		err := ValidateSendEmailRequest(&models.SendEmailRequest{
			To:      models.AddressList{"ok@example.com", "nope"},
			Subject: "hello",
		})

		var addrErr *mailErrors.AddressError
		require.True(t, errors.As(err, &addrErr))
		assert.Equal(t, "nope", addrErr.Address)
	})
}

func TestValidateSendWelcomeRequest(t *testing.T) {
	t.Parallel()

	err := ValidateSendWelcomeRequest(&models.SendWelcomeRequest{
		To: models.AddressList{"user@example.com"},
	})
	assertFieldError(t, err, "name")

	err = ValidateSendWelcomeRequest(&models.SendWelcomeRequest{
		To:   models.AddressList{"user@example.com"},
		Name: "Ada",
	})
	assert.NoError(t, err)
}

func TestValidateSendPasswordResetRequest(t *testing.T) {
	t.Parallel()

	err := ValidateSendPasswordResetRequest(&models.SendPasswordResetRequest{
		To: models.AddressList{"user@example.com"},
	})
	assertFieldError(t, err, "resetLink")

	err = ValidateSendPasswordResetRequest(&models.SendPasswordResetRequest{
		To:        models.AddressList{"user@example.com"},
		ResetLink: "https://example.com/reset?token=abc",
	})
	assert.NoError(t, err)
}

func TestValidateSendNotificationRequest(t *testing.T) {
	t.Parallel()

	err := ValidateSendNotificationRequest(&models.SendNotificationRequest{
		To:    models.AddressList{"user@example.com"},
		Title: "Heads up",
	})
	assertFieldError(t, err, "message")

	err = ValidateSendNotificationRequest(&models.SendNotificationRequest{
		To:      models.AddressList{"user@example.com"},
		Title:   "Heads up",
		Message: "The deploy finished.",
	})
	assert.NoError(t, err)
}

func TestValidateBulkSendRequest(t *testing.T) {
	t.Parallel()

	err := ValidateBulkSendRequest(&models.BulkSendRequest{Subject: "hi"})
	assertFieldError(t, err, "recipients")

	err = ValidateBulkSendRequest(&models.BulkSendRequest{
		Recipients: []models.Recipient{{Email: "user@example.com"}},
	})
	assertFieldError(t, err, "subject")

	// Recipient addresses are checked per iteration during dispatch, so a
	// malformed entry passes request validation.
	err = ValidateBulkSendRequest(&models.BulkSendRequest{
		Recipients: []models.Recipient{{Email: "not-an-address"}},
		Subject:    "hi",
	})
	assert.NoError(t, err)
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	require.Error(t, err)
	var fieldErr *mailErrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, field, fieldErr.Field)
}
