// Package templates holds the compiled-in email bodies. Rendering is pure:
// the same parameters always produce identical HTML and text.
package templates

import (
	"fmt"
	"strings"

	"github.com/qolzam/mailrelay/mail/models"
)

// PlaceholderName is the single token recognized in bulk personalization.
const PlaceholderName = "{{name}}"

// UsageNote documents the catalog for API consumers.
const UsageNote = "Bulk sends personalize subject, html, and text per recipient by replacing the literal token {{name}} with the recipient's name, or an empty string when no name is given. No other templating syntax is supported."

// Welcome renders the greeting sent to a new user. The name and org are
// embedded verbatim, no escaping.
func Welcome(name, orgName string) models.TemplateResult {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1976d2;">Welcome to %s, %s!</h2>
  <p style="font-size: 16px; color: #333;">Thanks for joining us. We're glad you're here.</p>
  <p style="font-size: 16px; color: #333;">If you have any questions, just reply to this email.</p>
</div>
`, orgName, name)

	text := fmt.Sprintf("Welcome to %s, %s!\n\nThanks for joining us. We're glad you're here.\nIf you have any questions, just reply to this email.\n", orgName, name)

	return models.TemplateResult{HTML: html, Text: text}
}

// PasswordReset renders the reset email. The link appears both as the button
// target and as plain text for clients that strip anchors. Link expiry is the
// caller's concern.
func PasswordReset(resetLink string) models.TemplateResult {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1976d2;">Reset your password</h2>
  <p style="font-size: 16px; color: #333;">We received a request to reset your password. Click the button below to choose a new one.</p>

  <div style="margin: 30px 0;">
    <a href="%s" style="display: inline-block; padding: 14px 28px; background-color: #1976d2; color: white; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px;">Reset Password</a>
  </div>

  <p style="color: #666; font-size: 14px;">If the button doesn't work, copy this link into your browser:</p>
  <p style="color: #666; font-size: 14px; word-break: break-all;">%s</p>

  <p style="color: #999; font-size: 13px; margin-top: 40px; border-top: 1px solid #eee; padding-top: 20px;">If you didn't request this, you can safely ignore this email.</p>
</div>
`, resetLink, resetLink)

	text := fmt.Sprintf("Reset your password\n\nFollow this link to choose a new password:\n%s\n\nIf you didn't request this, you can safely ignore this email.\n", resetLink)

	return models.TemplateResult{HTML: html, Text: text}
}

// Notification renders a generic notification with the title and message
// embedded verbatim.
func Notification(title, message string) models.TemplateResult {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1976d2;">%s</h2>
  <p style="font-size: 16px; color: #333;">%s</p>
</div>
`, title, message)

	text := fmt.Sprintf("%s\n\n%s\n", title, message)

	return models.TemplateResult{HTML: html, Text: text}
}

// ApplyName substitutes the {{name}} placeholder. Absent names substitute as
// the empty string, so "Hi {{name}}" becomes "Hi ".
func ApplyName(s, name string) string {
	return strings.ReplaceAll(s, PlaceholderName, name)
}

// Catalog lists the compiled-in templates for the catalog endpoint.
func Catalog() []models.TemplateInfo {
	return []models.TemplateInfo{
		{
			Name:           "welcome",
			Description:    "Greets a new user by name",
			RequiredFields: []string{"to", "name"},
		},
		{
			Name:           "password-reset",
			Description:    "Delivers a password reset link",
			RequiredFields: []string{"to", "resetLink"},
		},
		{
			Name:           "notification",
			Description:    "Generic notification with a title and message",
			RequiredFields: []string{"to", "title", "message"},
		},
	}
}
