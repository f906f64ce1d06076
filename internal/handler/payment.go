package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"charty-backend/internal/content"
	"charty-backend/internal/currency"
	"charty-backend/internal/dto"
	"charty-backend/internal/model"
	"charty-backend/internal/service"
	"charty-backend/internal/validate"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	converter      *currency.Converter
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, converter *currency.Converter, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		converter:      converter,
		validate:       validator.New(),
		logger:         logger.With().Str("handler", "payment").Logger(),
	}
}

func (h *PaymentHandler) MobileMoney(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.MobileMoneyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Missing required fields: buyerName, buyerPhone, buyerEmail, amount",
		})
	}
	if !validate.Email(req.BuyerEmail) {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid buyer email address"})
	}
	if _, ok := validate.NormalizePhone(req.BuyerPhone); !ok {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid buyer phone number"})
	}

	result, err := h.paymentService.InitiateMobileMoney(ctx, &req)
	if err != nil {
		h.logger.Error().Err(err).Msg("mobile money initiation failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, h.paymentResponse(result, req.Amount, lo.Ternary(req.Currency != "", strings.ToUpper(req.Currency), currency.TZS),
		"Payment initiated. Please confirm on your mobile device."))
}

func (h *PaymentHandler) Card(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CardPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Missing required fields: cardholderName, cardNumber, expiry, cvv, amount",
		})
	}

	result, err := h.paymentService.InitiateCard(ctx, &req)
	if err != nil {
		h.logger.Error().Err(err).Msg("card initiation failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, h.paymentResponse(result, req.Amount, result.Currency, "Card payment received and queued for processing."))
}

func (h *PaymentHandler) BankTransfer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BankTransferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Missing required fields: accountName, accountNumber, bankName, amount",
		})
	}

	result, err := h.paymentService.InitiateBankTransfer(ctx, &req)
	if err != nil {
		h.logger.Error().Err(err).Msg("bank transfer initiation failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, h.paymentResponse(result, req.Amount, result.Currency, "Bank transfer received and queued for processing."))
}

func (h *PaymentHandler) OrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := strings.TrimSpace(c.Param("orderId"))
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Order ID is required"})
	}

	result, err := h.paymentService.OrderStatus(ctx, orderID)
	if err != nil {
		h.logger.Error().Err(err).Msg("order status lookup failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.OrderStatusResponse{
		Success:       true,
		OrderID:       result.OrderID,
		PaymentStatus: result.PaymentStatus,
		Reference:     result.Reference,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *PaymentHandler) Methods(c echo.Context) error {
	return c.JSON(http.StatusOK, content.PaymentMethods)
}

func (h *PaymentHandler) CurrencyRate(c echo.Context) error {
	rate := h.converter.Rate()
	return c.JSON(http.StatusOK, dto.CurrencyRateResponse{
		Success: true,
		Rate:    rate,
		RateInfo: dto.RateInfo{
			From:        currency.USD,
			To:          currency.TZS,
			Rate:        rate,
			LastUpdated: nil,
			Source:      "static",
		},
		Formatted: currency.Format(rate, currency.TZS),
	})
}

func (h *PaymentHandler) CurrencyConvert(c echo.Context) error {
	var req dto.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid amount"})
	}

	from := lo.Ternary(req.From != "", strings.ToUpper(req.From), currency.USD)
	to := lo.Ternary(req.To != "", strings.ToUpper(req.To), currency.TZS)

	converted, err := h.converter.Convert(req.Amount, from, to)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.ConvertResponse{
		Success:         true,
		Amount:          req.Amount,
		From:            from,
		To:              to,
		ConvertedAmount: converted,
		Rate:            h.converter.Rate(),
		Formatted:       currency.Format(converted, to),
	})
}

func (h *PaymentHandler) paymentResponse(result *model.PaymentResult, originalAmount float64, originalCurrency, message string) dto.PaymentResponse {
	return dto.PaymentResponse{
		Success: true,
		Message: message,
		Data: dto.PaymentData{
			OrderID:          result.OrderID,
			PaymentStatus:    result.PaymentStatus,
			Reference:        result.Reference,
			Amount:           result.Amount,
			OriginalAmount:   originalAmount,
			OriginalCurrency: originalCurrency,
			DisplayAmount:    currency.Format(result.Amount, result.Currency),
		},
	}
}
