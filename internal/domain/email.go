package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ClubWelcomeEmailData holds data for the registration welcome email. The
// contact address is used only for delivery; it is never persisted.
type ClubWelcomeEmailData struct {
	Contact  string
	ClubName string
	Address  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendClubWelcome(ctx context.Context, data *ClubWelcomeEmailData) error
}
