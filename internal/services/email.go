package services

import (
	"context"
	"fmt"
	"log"

	"algosphere/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendClubWelcome sends the registration welcome email using the
// "club_welcome" template and the given data.
func (s *emailService) SendClubWelcome(ctx context.Context, data *domain.ClubWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("club welcome data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("club_welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render club_welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Contact, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Club welcome sent to %s", data.Contact)
	return nil
}
