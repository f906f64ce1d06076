package service

import (
	"context"
	"errors"

	"charty-backend/internal/client"
	"charty-backend/internal/gateway"
	"charty-backend/internal/model"
)

type fakeMailer struct {
	sent []client.Email
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, email client.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) Username() string { return "noreply@chartyevents.org" }

type fakeSMS struct {
	sent []string
	err  error
}

func (s *fakeSMS) Send(ctx context.Context, to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

type fakeModel struct {
	reply string
	err   error
}

func (m *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type fakeGateway struct {
	got  gateway.InitiateRequest
	err  error
	mode string
}

func (g *fakeGateway) Mode() string {
	if g.mode == "" {
		return "demo"
	}
	return g.mode
}

func (g *fakeGateway) InitiateMobileMoney(ctx context.Context, req gateway.InitiateRequest) (*model.PaymentResult, error) {
	g.got = req
	if g.err != nil {
		return nil, g.err
	}
	return &model.PaymentResult{
		OrderID:       "demo_1700000000000",
		PaymentStatus: model.StatusPending,
		Reference:     "REF-TEST",
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      req.Metadata,
	}, nil
}

var errBoom = errors.New("boom")
