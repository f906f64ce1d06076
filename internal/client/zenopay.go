package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"charty-backend/internal/config"
)

type ZenopayClient interface {
	CreateOrder(ctx context.Context, order *ZenopayOrder) (*ZenopayOrderResult, error)
}

// ZenopayOrder is the outbound payload for a mobile-money charge. The
// gateway calls back on WebhookURL once the buyer confirms on their handset.
type ZenopayOrder struct {
	OrderID    string         `json:"order_id"`
	BuyerName  string         `json:"buyer_name"`
	BuyerPhone string         `json:"buyer_phone"`
	BuyerEmail string         `json:"buyer_email"`
	Amount     float64        `json:"amount"`
	WebhookURL string         `json:"webhook_url,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type ZenopayOrderResult struct {
	Status     string `json:"status"`
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	OrderID    string `json:"order_id"`
	Reference  string `json:"reference"`
}

type zenopayClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewZenopayClient(cfg *config.Zenopay) ZenopayClient {
	return &zenopayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (c *zenopayClientImpl) CreateOrder(ctx context.Context, order *ZenopayOrder) (*ZenopayOrderResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/payments/mobile_money_tanzania",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("zenopay error %d: %s", resp.StatusCode, string(b))
	}

	var result ZenopayOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode zenopay response: %w", err)
	}

	return &result, nil
}
