package gateway

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charty-backend/internal/client"
	"charty-backend/internal/model"
)

// InitiateRequest carries everything the gateway needs to start a
// mobile-money charge.
type InitiateRequest struct {
	BuyerName  string
	BuyerPhone string
	BuyerEmail string
	Amount     float64
	Currency   string
	WebhookURL string
	Metadata   map[string]any
}

// Gateway initiates payments against the configured mode. Live talks to
// Zenopay over HTTP; Demo synthesizes plausible results without touching the
// network. Demo is a first-class mode, not an error fallback.
type Gateway interface {
	Mode() string
	InitiateMobileMoney(ctx context.Context, req InitiateRequest) (*model.PaymentResult, error)
}

// --- LIVE ---

type liveGateway struct {
	zenopay    client.ZenopayClient
	webhookURL string
	logger     zerolog.Logger
}

func NewLive(zenopay client.ZenopayClient, webhookURL string, logger zerolog.Logger) Gateway {
	return &liveGateway{
		zenopay:    zenopay,
		webhookURL: webhookURL,
		logger:     logger.With().Str("component", "gateway").Str("mode", "live").Logger(),
	}
}

func (g *liveGateway) Mode() string { return "live" }

func (g *liveGateway) InitiateMobileMoney(ctx context.Context, req InitiateRequest) (*model.PaymentResult, error) {
	webhookURL := req.WebhookURL
	if webhookURL == "" {
		webhookURL = g.webhookURL
	}

	order := &client.ZenopayOrder{
		OrderID:    uuid.NewString(),
		BuyerName:  req.BuyerName,
		BuyerPhone: req.BuyerPhone,
		BuyerEmail: req.BuyerEmail,
		Amount:     req.Amount,
		WebhookURL: webhookURL,
		Metadata:   req.Metadata,
	}

	result, err := g.zenopay.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("zenopay create order: %w", err)
	}

	orderID := result.OrderID
	if orderID == "" {
		orderID = order.OrderID
	}
	reference := result.Reference
	if reference == "" {
		reference = newReference()
	}

	g.logger.Info().
		Str("order_id", orderID).
		Float64("amount", req.Amount).
		Msg("mobile money order created")

	return &model.PaymentResult{
		OrderID:       orderID,
		PaymentStatus: model.StatusPending,
		Reference:     reference,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      req.Metadata,
	}, nil
}

// --- DEMO ---

type demoGateway struct {
	now    func() time.Time
	logger zerolog.Logger
}

// NewDemo builds the credential-free gateway. The clock is injectable so
// tests can pin the generated order ids.
func NewDemo(now func() time.Time, logger zerolog.Logger) Gateway {
	if now == nil {
		now = time.Now
	}
	return &demoGateway{
		now:    now,
		logger: logger.With().Str("component", "gateway").Str("mode", "demo").Logger(),
	}
}

func (g *demoGateway) Mode() string { return "demo" }

func (g *demoGateway) InitiateMobileMoney(ctx context.Context, req InitiateRequest) (*model.PaymentResult, error) {
	orderID := "demo_" + strconv.FormatInt(g.now().UnixMilli(), 10)

	g.logger.Info().
		Str("order_id", orderID).
		Float64("amount", req.Amount).
		Msg("synthesized demo order, no gateway call made")

	return &model.PaymentResult{
		OrderID:       orderID,
		PaymentStatus: model.StatusPending,
		Reference:     newReference(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      req.Metadata,
	}, nil
}

func newReference() string {
	return "REF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
