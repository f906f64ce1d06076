package client

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"charty-backend/internal/config"
)

type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg *config.Twilio) SMSSender {
	c := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioSender{client: c, from: cfg.From}
}

func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	return nil
}
