package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"charty-backend/internal/dto"
	"charty-backend/internal/model"
)

type WebhookHandler struct {
	logger zerolog.Logger
}

func NewWebhookHandler(logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		logger: logger.With().Str("handler", "webhook").Logger(),
	}
}

// Zenopay acknowledges gateway status callbacks. The event is logged and
// nothing else happens: there is no order store to update.
func (h *WebhookHandler) Zenopay(c echo.Context) error {
	var event model.ZenopayWebhookEvent
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if event.OrderID == "" {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Missing order_id"})
	}

	h.logger.Info().
		Str("order_id", event.OrderID).
		Str("payment_status", event.PaymentStatus).
		Str("reference", event.Reference).
		Str("transaction_id", event.TransactionID).
		Msg("zenopay webhook received")

	return c.JSON(http.StatusOK, dto.WebhookResponse{
		Success:   true,
		Message:   "Webhook processed",
		OrderID:   event.OrderID,
		Status:    event.PaymentStatus,
		Processed: true,
	})
}
