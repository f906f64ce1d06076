package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"charty-backend/internal/currency"
	"charty-backend/internal/dto"
	"charty-backend/internal/model"
)

func newPaymentService(gw *fakeGateway, pick func(int) int) PaymentService {
	return NewPaymentService(gw, currency.NewConverter(2600), fixedClock(1700000000000), pick, zerolog.Nop())
}

func TestInitiateMobileMoney(t *testing.T) {
	t.Run("should pass tzs amounts through unchanged", func(t *testing.T) {
		gw := &fakeGateway{}
		svc := newPaymentService(gw, nil)

		result, err := svc.InitiateMobileMoney(context.Background(), &dto.MobileMoneyRequest{
			BuyerName:  "Test User",
			BuyerPhone: "+255123456789",
			BuyerEmail: "test@example.com",
			Amount:     1000,
		})
		require.NoError(t, err)
		require.Equal(t, 1000.0, gw.got.Amount)
		require.Equal(t, currency.TZS, gw.got.Currency)
		require.Equal(t, model.StatusPending, result.PaymentStatus)
	})

	t.Run("should convert usd to tzs before the gateway", func(t *testing.T) {
		gw := &fakeGateway{}
		svc := newPaymentService(gw, nil)

		result, err := svc.InitiateMobileMoney(context.Background(), &dto.MobileMoneyRequest{
			BuyerName:  "Test User",
			BuyerPhone: "+255123456789",
			BuyerEmail: "test@example.com",
			Amount:     100,
			Currency:   currency.USD,
		})
		require.NoError(t, err)
		require.Equal(t, 260000.0, gw.got.Amount)
		require.Equal(t, currency.TZS, gw.got.Currency)
		require.Equal(t, 260000.0, result.Amount)
	})

	t.Run("should wrap gateway failures", func(t *testing.T) {
		svc := newPaymentService(&fakeGateway{err: errBoom}, nil)

		_, err := svc.InitiateMobileMoney(context.Background(), &dto.MobileMoneyRequest{Amount: 1})
		require.Error(t, err)
		require.ErrorIs(t, err, errBoom)
	})
}

func TestCardAndBankStubs(t *testing.T) {
	gw := &fakeGateway{}
	svc := newPaymentService(gw, nil)

	t.Run("card never reaches the gateway", func(t *testing.T) {
		result, err := svc.InitiateCard(context.Background(), &dto.CardPaymentRequest{
			CardholderName: "A B",
			CardNumber:     "4242424242424242",
			Expiry:         "12/27",
			CVV:            "123",
			Amount:         50,
		})
		require.NoError(t, err)
		require.Equal(t, "card_1700000000000", result.OrderID)
		require.Equal(t, model.StatusPending, result.PaymentStatus)
		require.NotEmpty(t, result.Reference)
		require.Empty(t, gw.got.BuyerName)
	})

	t.Run("bank transfer never reaches the gateway", func(t *testing.T) {
		result, err := svc.InitiateBankTransfer(context.Background(), &dto.BankTransferRequest{
			AccountName:   "A B",
			AccountNumber: "0150000000000",
			BankName:      "CRDB",
			Amount:        5000,
		})
		require.NoError(t, err)
		require.Equal(t, "bank_1700000000000", result.OrderID)
		require.Equal(t, model.StatusPending, result.PaymentStatus)
		require.Empty(t, gw.got.BuyerName)
	})
}

func TestOrderStatus(t *testing.T) {
	t.Run("should report the sampled status", func(t *testing.T) {
		for i, want := range model.Statuses {
			idx := i
			svc := newPaymentService(&fakeGateway{}, func(n int) int { return idx })

			result, err := svc.OrderStatus(context.Background(), "demo_1")
			require.NoError(t, err)
			require.Equal(t, want, result.PaymentStatus)
			require.Equal(t, "demo_1", result.OrderID)
		}
	})

	t.Run("status is independent of previous calls", func(t *testing.T) {
		calls := 0
		svc := newPaymentService(&fakeGateway{}, func(n int) int {
			calls++
			return calls % n
		})

		first, err := svc.OrderStatus(context.Background(), "demo_1")
		require.NoError(t, err)
		second, err := svc.OrderStatus(context.Background(), "demo_1")
		require.NoError(t, err)
		require.NotEqual(t, first.PaymentStatus, second.PaymentStatus)
	})
}
