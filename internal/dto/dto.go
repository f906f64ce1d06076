package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
	Phone   string `json:"phone"`
}

type DonorInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

type DonationRequest struct {
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"paymentMethod"`
	DonorInfo     DonorInfo `json:"donorInfo"`
}

type MobileMoneyRequest struct {
	BuyerName  string         `json:"buyerName" validate:"required"`
	BuyerPhone string         `json:"buyerPhone" validate:"required"`
	BuyerEmail string         `json:"buyerEmail" validate:"required"`
	Amount     float64        `json:"amount" validate:"required,gt=0"`
	Currency   string         `json:"currency"`
	WebhookURL string         `json:"webhookUrl"`
	Metadata   map[string]any `json:"metadata"`
}

type CardPaymentRequest struct {
	CardholderName string  `json:"cardholderName" validate:"required"`
	CardNumber     string  `json:"cardNumber" validate:"required"`
	Expiry         string  `json:"expiry" validate:"required"`
	CVV            string  `json:"cvv" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Currency       string  `json:"currency"`
}

type BankTransferRequest struct {
	AccountName   string  `json:"accountName" validate:"required"`
	AccountNumber string  `json:"accountNumber" validate:"required"`
	BankName      string  `json:"bankName" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// MessageResponse is the plain success/failure envelope most endpoints share.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	TS     int64  `json:"ts"`
}

type DonationResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

type PaymentData struct {
	OrderID          string  `json:"orderId"`
	PaymentStatus    string  `json:"paymentStatus"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
	OriginalAmount   float64 `json:"originalAmount"`
	OriginalCurrency string  `json:"originalCurrency"`
	DisplayAmount    string  `json:"displayAmount"`
}

type PaymentResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    PaymentData `json:"data"`
}

type OrderStatusResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
	Reference     string `json:"reference"`
	Timestamp     string `json:"timestamp"`
}

type WebhookResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Processed bool   `json:"processed"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ChatErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type RateInfo struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Rate        float64 `json:"rate"`
	LastUpdated *string `json:"lastUpdated"`
	Source      string  `json:"source"`
}

type CurrencyRateResponse struct {
	Success   bool     `json:"success"`
	Rate      float64  `json:"rate"`
	RateInfo  RateInfo `json:"rateInfo"`
	Formatted string   `json:"formatted"`
}

type ConvertResponse struct {
	Success         bool    `json:"success"`
	Amount          float64 `json:"amount"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	ConvertedAmount float64 `json:"convertedAmount"`
	Rate            float64 `json:"rate"`
	Formatted       string  `json:"formatted"`
}
