package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"charty-backend/internal/chat"
	"charty-backend/internal/client"
)

type ChatService interface {
	Reply(ctx context.Context, message, extraContext string) (string, error)
}

type chatServiceImpl struct {
	model  client.ChatModel
	logger zerolog.Logger
}

// NewChatService accepts a nil model, in which case every reply comes from
// the canned fallback table.
func NewChatService(model client.ChatModel, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		model:  model,
		logger: logger.With().Str("component", "ai-bot").Logger(),
	}
}

func (s *chatServiceImpl) Reply(ctx context.Context, message, extraContext string) (string, error) {
	message = strings.TrimSpace(message)

	if s.model == nil {
		return chat.Fallback(message), nil
	}

	prompt := fmt.Sprintf("%s\n\nUser question: %s\n\nProvide a helpful response:", chat.OrganizationContext, message)
	if extraContext != "" {
		prompt = fmt.Sprintf("%s\n\nConversation context: %s\n\nUser question: %s\n\nProvide a helpful response:",
			chat.OrganizationContext, extraContext, message)
	}

	reply, err := s.model.Generate(ctx, prompt)
	if err != nil {
		// Model failures downgrade to canned replies rather than surfacing.
		s.logger.Error().Err(err).Msg("generative model call failed, using fallback")
		return chat.Fallback(message), nil
	}

	return reply, nil
}
