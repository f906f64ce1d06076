package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charty-backend/internal/currency"
	"charty-backend/internal/dto"
	"charty-backend/internal/gateway"
	"charty-backend/internal/model"
)

type PaymentService interface {
	InitiateMobileMoney(ctx context.Context, req *dto.MobileMoneyRequest) (*model.PaymentResult, error)
	InitiateCard(ctx context.Context, req *dto.CardPaymentRequest) (*model.PaymentResult, error)
	InitiateBankTransfer(ctx context.Context, req *dto.BankTransferRequest) (*model.PaymentResult, error)
	OrderStatus(ctx context.Context, orderID string) (*model.PaymentResult, error)
}

type paymentServiceImpl struct {
	gateway   gateway.Gateway
	converter *currency.Converter
	now       func() time.Time
	// pick selects a status index for the order-status placeholder; random
	// in production, pinned in tests.
	pick   func(n int) int
	logger zerolog.Logger
}

func NewPaymentService(gw gateway.Gateway, converter *currency.Converter, now func() time.Time, pick func(n int) int, logger zerolog.Logger) PaymentService {
	if now == nil {
		now = time.Now
	}
	if pick == nil {
		pick = rand.Intn
	}
	return &paymentServiceImpl{
		gateway:   gw,
		converter: converter,
		now:       now,
		pick:      pick,
		logger:    logger.With().Str("component", "payment").Logger(),
	}
}

// InitiateMobileMoney charges in TZS; USD requests are converted at the
// configured rate before reaching the gateway.
func (s *paymentServiceImpl) InitiateMobileMoney(ctx context.Context, req *dto.MobileMoneyRequest) (*model.PaymentResult, error) {
	cur := req.Currency
	if cur == "" {
		cur = currency.TZS
	}

	amount := req.Amount
	if cur == currency.USD {
		converted, err := s.converter.Convert(req.Amount, currency.USD, currency.TZS)
		if err != nil {
			return nil, fmt.Errorf("convert amount: %w", err)
		}
		amount, cur = converted, currency.TZS
	}

	result, err := s.gateway.InitiateMobileMoney(ctx, gateway.InitiateRequest{
		BuyerName:  req.BuyerName,
		BuyerPhone: req.BuyerPhone,
		BuyerEmail: req.BuyerEmail,
		Amount:     amount,
		Currency:   cur,
		WebhookURL: req.WebhookURL,
		Metadata:   req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("initiate mobile money: %w", err)
	}
	return result, nil
}

// InitiateCard never reaches a gateway. The card flow is a stub that
// acknowledges the request with a pending order; no charge occurs and the
// card details are discarded with the request.
func (s *paymentServiceImpl) InitiateCard(ctx context.Context, req *dto.CardPaymentRequest) (*model.PaymentResult, error) {
	cur := req.Currency
	if cur == "" {
		cur = currency.USD
	}

	orderID := "card_" + strconv.FormatInt(s.now().UnixMilli(), 10)
	s.logger.Info().Str("order_id", orderID).Float64("amount", req.Amount).Msg("card payment stubbed")

	return &model.PaymentResult{
		OrderID:       orderID,
		PaymentStatus: model.StatusPending,
		Reference:     uuid.NewString(),
		Amount:        req.Amount,
		Currency:      cur,
	}, nil
}

// InitiateBankTransfer is the same stub shape as the card flow.
func (s *paymentServiceImpl) InitiateBankTransfer(ctx context.Context, req *dto.BankTransferRequest) (*model.PaymentResult, error) {
	cur := req.Currency
	if cur == "" {
		cur = currency.TZS
	}

	orderID := "bank_" + strconv.FormatInt(s.now().UnixMilli(), 10)
	s.logger.Info().Str("order_id", orderID).Float64("amount", req.Amount).Msg("bank transfer stubbed")

	return &model.PaymentResult{
		OrderID:       orderID,
		PaymentStatus: model.StatusPending,
		Reference:     uuid.NewString(),
		Amount:        req.Amount,
		Currency:      cur,
	}, nil
}

// OrderStatus does not query the gateway; it reports a uniformly random
// status. Placeholder behavior kept until a real lookup is specified.
func (s *paymentServiceImpl) OrderStatus(ctx context.Context, orderID string) (*model.PaymentResult, error) {
	status := model.Statuses[s.pick(len(model.Statuses))]

	s.logger.Info().Str("order_id", orderID).Str("status", status).Msg("order status requested")

	return &model.PaymentResult{
		OrderID:       orderID,
		PaymentStatus: status,
		Reference:     uuid.NewString(),
	}, nil
}
