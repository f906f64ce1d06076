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

type ContactHandler struct {
	contactService service.ContactService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewContactHandler(contactService service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validator.New(),
		logger:         logger.With().Str("handler", "contact").Logger(),
	}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Missing required fields: name, email, message",
		})
	}
	if !validate.Email(req.Email) {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid email address"})
	}

	if err := h.contactService.Submit(ctx, &req); err != nil {
		h.logger.Error().Err(err).Msg("contact submission failed")
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: "Failed to send message"})
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Thank you for your message. We'll get back to you within 24 hours.",
	})
}
