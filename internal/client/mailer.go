package client

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"charty-backend/internal/config"
)

// Email is the message shape handlers produce. The adapter owns the sender
// address; callers only pick the display name.
type Email struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
	// Username is the authenticated sender address, used as the default
	// support inbox when none is configured.
	Username() string
}

type smtpMailer struct {
	client   *mail.Client
	username string
}

// NewSMTPMailer connects the resolved provider settings to a go-mail client.
func NewSMTPMailer(settings config.SMTPSettings) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(settings.User),
		mail.WithPassword(settings.Pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if settings.Secure {
		opts = append(opts, mail.WithSSL())
	}

	c, err := mail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &smtpMailer{client: c, username: settings.User}, nil
}

func (m *smtpMailer) Username() string {
	return m.username
}

func (m *smtpMailer) Send(ctx context.Context, email Email) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(email.FromName, m.username); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to address: %w", err)
		}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Text)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
