package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"charty-backend/internal/dto"
	"charty-backend/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
	logger      zerolog.Logger
}

func NewChatHandler(chatService service.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger.With().Str("handler", "ai-bot").Logger(),
	}
}

func (h *ChatHandler) Reply(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Invalid request body"})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "Message is required"})
	}

	reply, err := h.chatService.Reply(ctx, req.Message, req.Context)
	if err != nil {
		// Unreachable while the fallback path is pure string logic, kept so
		// a future reply source cannot fail silently.
		h.logger.Error().Err(err).Msg("ai bot reply failed")
		return c.JSON(http.StatusInternalServerError, dto.ChatErrorResponse{
			Success: false,
			Message: "Failed to process AI bot request",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Success:   true,
		Message:   reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
