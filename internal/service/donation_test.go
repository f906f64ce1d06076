package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"charty-backend/internal/config"
	"charty-backend/internal/dto"
)

var txnID = regexp.MustCompile(`^txn_\d+$`)

func donationRequest() *dto.DonationRequest {
	return &dto.DonationRequest{
		Amount: 100,
		DonorInfo: dto.DonorInfo{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
		},
	}
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestDonationProcess(t *testing.T) {
	org := config.Org{Name: "Charty", SupportEmail: "support@chartyevents.org"}

	t.Run("should return a timestamp-derived transaction id", func(t *testing.T) {
		svc := NewDonationService(&fakeMailer{}, org, fixedClock(1700000000000), zerolog.Nop())

		id, err := svc.Process(context.Background(), donationRequest())
		require.NoError(t, err)
		require.Equal(t, "txn_1700000000000", id)
		require.Regexp(t, txnID, id)
	})

	t.Run("ids differ across timestamps", func(t *testing.T) {
		first, err := NewDonationService(nil, org, fixedClock(1700000000000), zerolog.Nop()).
			Process(context.Background(), donationRequest())
		require.NoError(t, err)

		second, err := NewDonationService(nil, org, fixedClock(1700000000001), zerolog.Nop()).
			Process(context.Background(), donationRequest())
		require.NoError(t, err)
		require.NotEqual(t, first, second)
	})

	t.Run("should email receipt and support notification", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewDonationService(mailer, org, fixedClock(1700000000000), zerolog.Nop())

		_, err := svc.Process(context.Background(), donationRequest())
		require.NoError(t, err)
		require.Len(t, mailer.sent, 2)

		receipt := mailer.sent[0]
		require.Equal(t, "a@b.com", receipt.To)
		require.Equal(t, "Donation Receipt - txn_1700000000000", receipt.Subject)
		require.Contains(t, receipt.Text, "one-time donation of 100")

		notify := mailer.sent[1]
		require.Equal(t, "support@chartyevents.org", notify.To)
		require.Contains(t, notify.Text, "Email: a@b.com")
	})

	t.Run("should skip support copy when no support address", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewDonationService(mailer, config.Org{Name: "Charty"}, fixedClock(1700000000000), zerolog.Nop())

		_, err := svc.Process(context.Background(), donationRequest())
		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
	})

	t.Run("should keep the requested donation type", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewDonationService(mailer, org, fixedClock(1700000000000), zerolog.Nop())

		req := donationRequest()
		req.Type = "monthly"
		_, err := svc.Process(context.Background(), req)
		require.NoError(t, err)
		require.Contains(t, mailer.sent[0].Text, "monthly donation")
	})

	t.Run("should propagate email failures", func(t *testing.T) {
		svc := NewDonationService(&fakeMailer{err: errBoom}, org, fixedClock(1700000000000), zerolog.Nop())

		_, err := svc.Process(context.Background(), donationRequest())
		require.Error(t, err)
	})

	t.Run("should still succeed without a mailer", func(t *testing.T) {
		svc := NewDonationService(nil, org, fixedClock(1700000000000), zerolog.Nop())

		id, err := svc.Process(context.Background(), donationRequest())
		require.NoError(t, err)
		require.Regexp(t, txnID, id)
	})
}
