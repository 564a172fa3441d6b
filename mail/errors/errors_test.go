package errors_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailErrors "github.com/qolzam/mailrelay/mail/errors"
)

// Test MailError functionality
func TestMailError_Error(t *testing.T) {
	// Test MailError without cause
	err := mailErrors.NewMailError("TEST_CODE", "Test message", nil)
	assert.Equal(t, "TEST_CODE: Test message", err.Error())

	// Test MailError with cause
	cause := errors.New("provider connection refused")
	errWithCause := mailErrors.NewMailError("PROVIDER_ERROR", "Failed to send email", cause)
	assert.Contains(t, errWithCause.Error(), "PROVIDER_ERROR: Failed to send email")
	assert.Contains(t, errWithCause.Error(), "provider connection refused")
}

func TestMailError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	err := mailErrors.NewMailError("TEST_CODE", "Test message", cause)

	unwrapped := errors.Unwrap(err)
	assert.Equal(t, cause, unwrapped)
}

func TestWrapProviderError(t *testing.T) {
	originalErr := errors.New("550 mailbox unavailable")
	wrappedErr := mailErrors.WrapProviderError(originalErr)

	assert.Equal(t, mailErrors.CodeProviderError, wrappedErr.Code)
	assert.Equal(t, "Failed to send email", wrappedErr.Message)
	assert.Equal(t, "550 mailbox unavailable", wrappedErr.Details)
	assert.True(t, errors.Is(wrappedErr, originalErr))
}

// Test typed validation errors
func TestFieldError(t *testing.T) {
	err := &mailErrors.FieldError{Field: "subject"}

	assert.Equal(t, "Missing required field: subject", err.Error())
	assert.True(t, errors.Is(err, mailErrors.ErrMissingRequiredField))
}

func TestAddressError(t *testing.T) {
	err := &mailErrors.AddressError{Address: "not-an-address"}

	assert.Equal(t, "Invalid email address: not-an-address", err.Error())
	assert.True(t, errors.Is(err, mailErrors.ErrInvalidAddress))
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "VALIDATION_FAILED", mailErrors.CodeValidationFailed)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", mailErrors.CodeMissingRequiredField)
	assert.Equal(t, "INVALID_EMAIL_ADDRESS", mailErrors.CodeInvalidEmailAddress)
	assert.Equal(t, "PROVIDER_ERROR", mailErrors.CodeProviderError)
	assert.Equal(t, "NOT_FOUND", mailErrors.CodeNotFound)
	assert.Equal(t, "INTERNAL_ERROR", mailErrors.CodeInternalError)
}

// errorRoute runs handler under a throwaway fiber app and decodes the response.
func errorRoute(t *testing.T, handler fiber.Handler) (int, mailErrors.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed mailErrors.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestHandleValidationError_NamesTheField(t *testing.T) {
	status, parsed := errorRoute(t, func(c *fiber.Ctx) error {
		return mailErrors.HandleValidationError(c, &mailErrors.FieldError{Field: "to"})
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing required field: to", parsed.Error)
	assert.Equal(t, mailErrors.CodeMissingRequiredField, parsed.Code)
}

func TestHandleValidationError_NamesTheAddress(t *testing.T) {
	status, parsed := errorRoute(t, func(c *fiber.Ctx) error {
		return mailErrors.HandleValidationError(c, &mailErrors.AddressError{Address: "bad@@addr"})
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid email address: bad@@addr", parsed.Error)
	assert.Equal(t, mailErrors.CodeInvalidEmailAddress, parsed.Code)
	assert.Equal(t, "bad@@addr", parsed.Details)
}

func TestHandleServiceError_ForwardsProviderDetail(t *testing.T) {
	status, parsed := errorRoute(t, func(c *fiber.Ctx) error {
		cause := errors.New("421 service not available")
		return mailErrors.HandleServiceError(c, mailErrors.WrapProviderError(cause))
	})

	assert.Equal(t, 500, status)
	assert.Equal(t, mailErrors.CodeProviderError, parsed.Code)
	assert.Equal(t, "421 service not available", parsed.Details)
}

func TestHandleServiceError_HidesUnexpectedDetail(t *testing.T) {
	status, parsed := errorRoute(t, func(c *fiber.Ctx) error {
		return mailErrors.HandleServiceError(c, errors.New("pointer dereference in sendLoop"))
	})

	assert.Equal(t, 500, status)
	assert.Equal(t, mailErrors.CodeInternalError, parsed.Code)
	assert.Equal(t, "An unexpected error occurred", parsed.Error)
	assert.Nil(t, parsed.Details)
}
