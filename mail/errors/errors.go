package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Mail service specific errors
var (
	ErrProviderSend   = errors.New("provider send failed")
	ErrInvalidAddress = errors.New("invalid email address")

	// Request and validation errors
	ErrInvalidRequest       = errors.New("invalid request")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidRequestBody   = errors.New("invalid request body")
	ErrMissingRequiredField = errors.New("missing required field")
)

// MailError represents a mail service error with additional context
type MailError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *MailError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MailError) Unwrap() error {
	return e.Cause
}

// NewMailError creates a new MailError
func NewMailError(code, message string, cause error) *MailError {
	return &MailError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes
const (
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidEmailAddress  = "INVALID_EMAIL_ADDRESS"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeProviderError        = "PROVIDER_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
)

// FieldError reports a missing or empty required field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// AddressError reports a malformed recipient address. Address carries the
// offending value verbatim so callers can see exactly which entry failed.
type AddressError struct {
	Address string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("Invalid email address: %s", e.Address)
}

func (e *AddressError) Unwrap() error {
	return ErrInvalidAddress
}

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses.
// Provider failures carry the upstream detail verbatim; anything else is
// reported generically so internals never leak to callers.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var mailErr *MailError
	if errors.As(err, &mailErr) && mailErr.Code == CodeProviderError {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Failed to send email",
			Code:    CodeProviderError,
			Details: mailErr.Details,
		})
	}

	switch {
	case errors.Is(err, ErrProviderSend):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Failed to send email",
			Code:    CodeProviderError,
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrMissingRequiredField), errors.Is(err, ErrInvalidAddress):
		return HandleValidationError(c, err)
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "An unexpected error occurred",
			Code:  CodeInternalError,
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request.
// The response names the offending field or address.
func HandleValidationError(c *fiber.Ctx, err error) error {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   fieldErr.Error(),
			Code:    CodeMissingRequiredField,
			Details: fieldErr.Field,
		})
	}

	var addrErr *AddressError
	if errors.As(err, &addrErr) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   addrErr.Error(),
			Code:    CodeInvalidEmailAddress,
			Details: addrErr.Address,
		})
	}

	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: err.Error(),
		Code:  CodeValidationFailed,
	})
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: message,
		Code:  CodeInvalidRequest,
	})
}

// WrapProviderError wraps an upstream send failure, preserving its detail
func WrapProviderError(err error) *MailError {
	return &MailError{
		Code:    CodeProviderError,
		Message: "Failed to send email",
		Details: err.Error(),
		Cause:   err,
	}
}
