package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/infrastructure/email"
)

type contactService struct {
	mailer        email.Mailer
	profiles      profile.Repository
	fallbackEmail string
}

// NewContactService builds the contact relay. mailer may be nil when no
// SMTP transport is configured; Send then fails with ErrNotConfigured.
func NewContactService(mailer email.Mailer, profiles profile.Repository, fallbackEmail string) contact.Service {
	return &contactService{
		mailer:        mailer,
		profiles:      profiles,
		fallbackEmail: fallbackEmail,
	}
}

func (s *contactService) Send(ctx context.Context, req *contact.SendRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if s.mailer == nil {
		return contact.ErrNotConfigured
	}

	recipient := s.fallbackEmail
	if p, err := s.profiles.Get(ctx); err == nil && p.Email != "" {
		recipient = p.Email
	} else if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return err
	}

	msg := email.Message{
		To:      recipient,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", req.Name),
		Body: fmt.Sprintf(
			"New contact form submission\r\n\r\nName: %s\r\nEmail: %s\r\n\r\nMessage:\r\n%s\r\n",
			req.Name, req.Email, req.Message,
		),
	}

	return s.mailer.Send(ctx, msg)
}
