package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"charty-backend/internal/client"
	"charty-backend/internal/config"
	"charty-backend/internal/dto"
)

type DonationService interface {
	// Process simulates settlement and returns the synthetic transaction id.
	Process(ctx context.Context, req *dto.DonationRequest) (string, error)
}

type donationServiceImpl struct {
	mailer client.Mailer
	org    config.Org
	now    func() time.Time
	logger zerolog.Logger
}

func NewDonationService(mailer client.Mailer, org config.Org, now func() time.Time, logger zerolog.Logger) DonationService {
	if now == nil {
		now = time.Now
	}
	return &donationServiceImpl{
		mailer: mailer,
		org:    org,
		now:    now,
		logger: logger.With().Str("component", "donation").Logger(),
	}
}

func (s *donationServiceImpl) Process(ctx context.Context, req *dto.DonationRequest) (string, error) {
	// No gateway is involved here; the donation endpoint simulates
	// settlement and only notifies by email.
	transactionID := "txn_" + strconv.FormatInt(s.now().UnixMilli(), 10)

	donationType := req.Type
	if donationType == "" {
		donationType = "one-time"
	}

	s.logger.Info().
		Float64("amount", req.Amount).
		Str("type", donationType).
		Str("payment_method", req.PaymentMethod).
		Str("donor", req.DonorInfo.Email).
		Str("transaction_id", transactionID).
		Msg("donation processed")

	if s.mailer == nil {
		s.logger.Warn().Msg("mailer not configured, donation logged only")
		return transactionID, nil
	}

	if err := s.sendReceipt(ctx, req, donationType, transactionID); err != nil {
		return "", err
	}

	if s.org.SupportEmail != "" {
		if err := s.sendNotification(ctx, req, donationType, transactionID); err != nil {
			return "", err
		}
	}

	return transactionID, nil
}

func (s *donationServiceImpl) sendReceipt(ctx context.Context, req *dto.DonationRequest, donationType, transactionID string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for your %s donation of %s.\nTransaction ID: %s\n\nYour support helps us continue our mission.\n\nRegards,\n%s Team",
		req.DonorInfo.FirstName, donationType, formatAmount(req.Amount), transactionID, s.org.Name,
	)

	err := s.mailer.Send(ctx, client.Email{
		FromName: s.org.Name + " Donations",
		To:       req.DonorInfo.Email,
		Subject:  "Donation Receipt - " + transactionID,
		Text:     body,
	})
	if err != nil {
		return fmt.Errorf("send donation receipt: %w", err)
	}
	return nil
}

func (s *donationServiceImpl) sendNotification(ctx context.Context, req *dto.DonationRequest, donationType, transactionID string) error {
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "n/a"
	}

	body := fmt.Sprintf(
		"Donation received.\n\nName: %s %s\nEmail: %s\nAmount: %s\nType: %s\nPayment Method: %s\nTransaction ID: %s",
		req.DonorInfo.FirstName, req.DonorInfo.LastName, req.DonorInfo.Email,
		formatAmount(req.Amount), donationType, paymentMethod, transactionID,
	)

	err := s.mailer.Send(ctx, client.Email{
		FromName: s.org.Name + " Donations",
		To:       s.org.SupportEmail,
		Subject:  fmt.Sprintf("[Donation] %s - %s", formatAmount(req.Amount), transactionID),
		Text:     body,
	})
	if err != nil {
		return fmt.Errorf("send donation notification: %w", err)
	}
	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
