package model

// PaymentStatus values mirror what the gateway reports.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Statuses lists every status the gateway can report, in the order the
// status endpoint samples them.
var Statuses = []string{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

// PaymentResult is the normalized outcome of a payment initiation or status
// check. It lives for exactly one request; nothing stores it.
type PaymentResult struct {
	OrderID       string
	PaymentStatus string
	Reference     string
	Amount        float64
	Currency      string
	Metadata      map[string]any
}

// ZenopayWebhookEvent is the inbound status update posted by the gateway.
type ZenopayWebhookEvent struct {
	OrderID       string         `json:"order_id"`
	PaymentStatus string         `json:"payment_status"`
	Reference     string         `json:"reference"`
	TransactionID string         `json:"transaction_id"`
	Metadata      map[string]any `json:"metadata"`
}
