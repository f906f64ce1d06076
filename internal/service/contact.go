package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"charty-backend/internal/client"
	"charty-backend/internal/config"
	"charty-backend/internal/dto"
	"charty-backend/internal/validate"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactServiceImpl struct {
	mailer client.Mailer
	sms    client.SMSSender
	org    config.Org
	logger zerolog.Logger
}

// NewContactService wires the notification adapters. Either adapter may be
// nil, in which case its channel is skipped.
func NewContactService(mailer client.Mailer, sms client.SMSSender, org config.Org, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{
		mailer: mailer,
		sms:    sms,
		org:    org,
		logger: logger.With().Str("component", "contact").Logger(),
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) error {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "New Contact Message"
	}

	s.logger.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", subject).
		Msg("contact submission")

	if s.mailer != nil {
		if err := s.sendSupportEmail(ctx, req, subject); err != nil {
			return err
		}
		if s.org.SendAck {
			if err := s.sendAcknowledgement(ctx, req); err != nil {
				return err
			}
		}
	} else {
		s.logger.Warn().Msg("mailer not configured, contact logged only")
	}

	// SMS is best-effort: failures are logged and never fail the request.
	s.sendThanksSMS(ctx, req)

	return nil
}

func (s *contactServiceImpl) supportAddress() string {
	if s.org.SupportEmail != "" {
		return s.org.SupportEmail
	}
	return s.mailer.Username()
}

func (s *contactServiceImpl) sendSupportEmail(ctx context.Context, req *dto.ContactRequest, subject string) error {
	body := fmt.Sprintf(
		"You have received a new contact message.\n\nFrom: %s <%s>\nSubject: %s\nMessage:\n%s\n\nTime: %s",
		req.Name, req.Email, subject, req.Message, time.Now().UTC().Format(time.RFC3339),
	)

	err := s.mailer.Send(ctx, client.Email{
		FromName: s.org.Name + " Contact",
		To:       s.supportAddress(),
		ReplyTo:  req.Email,
		Subject:  "[Contact] " + subject,
		Text:     body,
	})
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (s *contactServiceImpl) sendAcknowledgement(ctx context.Context, req *dto.ContactRequest) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out to %s. We have received your message and will get back to you within 24 hours.\n\nYour message:\n%s\n\nRegards,\n%s Team",
		req.Name, s.org.Name, req.Message, s.org.Name,
	)

	err := s.mailer.Send(ctx, client.Email{
		FromName: s.org.Name + " Support",
		To:       req.Email,
		Subject:  "We received your message",
		Text:     body,
	})
	if err != nil {
		return fmt.Errorf("send acknowledgement email: %w", err)
	}
	return nil
}

func (s *contactServiceImpl) sendThanksSMS(ctx context.Context, req *dto.ContactRequest) {
	if req.Phone == "" {
		return
	}
	if s.sms == nil {
		s.logger.Warn().Msg("sms not configured, skipping thank-you sms")
		return
	}

	normalized, ok := validate.NormalizePhone(req.Phone)
	if !ok {
		s.logger.Warn().Str("phone", req.Phone).Msg("invalid phone provided, expected E.164")
		return
	}

	body := fmt.Sprintf(
		"Hi %s, thanks for contacting %s. We received your message and will get back to you within 24 hours.",
		req.Name, s.org.Name,
	)
	if err := s.sms.Send(ctx, normalized, body); err != nil {
		s.logger.Warn().Err(err).Str("to", normalized).Msg("thank-you sms failed")
	}
}
