package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"charty-backend/internal/dto"
	"charty-backend/internal/service"
	"charty-backend/internal/validate"
)

type DonationHandler struct {
	donationService service.DonationService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewDonationHandler(donationService service.DonationService, logger zerolog.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		validate:        validator.New(),
		logger:          logger.With().Str("handler", "donation").Logger(),
	}
}

func (h *DonationHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if !validate.Amount(req.Amount) {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid amount"})
	}
	if err := h.validate.Struct(&req.DonorInfo); err != nil || !validate.Email(req.DonorInfo.Email) {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Missing or invalid donor details",
		})
	}

	transactionID, err := h.donationService.Process(ctx, &req)
	if err != nil {
		h.logger.Error().Err(err).Msg("donation processing failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: "Failed to process donation"})
	}

	return c.JSON(http.StatusOK, dto.DonationResponse{
		Success:       true,
		TransactionID: transactionID,
		Message:       "Thank you for your donation! Your contribution will make a real difference.",
	})
}
