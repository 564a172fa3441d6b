package models

import (
	"encoding/json"
	"errors"
)

// AddressList is an ordered sequence of recipient addresses. Callers may
// submit either a single JSON string or an array of strings; both normalize
// to a sequence so the rest of the pipeline handles one shape.
type AddressList []string

// UnmarshalJSON accepts "a@b.com" and ["a@b.com", "c@d.com"].
func (a *AddressList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AddressList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("to must be a string or an array of strings")
	}
	*a = AddressList(many)
	return nil
}

// SendEmailRequest is the payload for POST /send-email
type SendEmailRequest struct {
	To      AddressList `json:"to"`
	Subject string      `json:"subject"`
	Text    string      `json:"text"`
	HTML    string      `json:"html"`
	From    string      `json:"from"`
}

// SendWelcomeRequest is the payload for POST /send-welcome
type SendWelcomeRequest struct {
	To   AddressList `json:"to"`
	Name string      `json:"name"`
}

// SendPasswordResetRequest is the payload for POST /send-password-reset
type SendPasswordResetRequest struct {
	To        AddressList `json:"to"`
	ResetLink string      `json:"resetLink"`
}

// SendNotificationRequest is the payload for POST /send-notification
type SendNotificationRequest struct {
	To      AddressList `json:"to"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// Recipient identifies one bulk-send target. Name feeds the {{name}}
// placeholder and may be empty.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// BulkSendRequest is the payload for POST /send-bulk
type BulkSendRequest struct {
	Recipients []Recipient `json:"recipients"`
	Subject    string      `json:"subject"`
	Text       string      `json:"text"`
	HTML       string      `json:"html"`
	From       string      `json:"from"`
}

// TemplateResult is a rendered (html, text) pair, immutable once produced
type TemplateResult struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// SendReceipt reports a single accepted send
type SendReceipt struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// SendOutcome records the fate of one bulk recipient
type SendOutcome struct {
	Email     string `json:"email"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkSendReport aggregates per-recipient outcomes. Results and Errors each
// preserve recipient-submission order.
type BulkSendReport struct {
	Success     bool          `json:"success"`
	TotalSent   int           `json:"totalSent"`
	TotalFailed int           `json:"totalFailed"`
	Results     []SendOutcome `json:"results"`
	Errors      []SendOutcome `json:"errors"`
}

// TemplateInfo describes one compiled-in template for the catalog endpoint
type TemplateInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"requiredFields"`
}

// HealthResponse is the GET /health payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
