package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestChatReply(t *testing.T) {
	t.Run("should use the model when configured", func(t *testing.T) {
		svc := NewChatService(&fakeModel{reply: "We run education programs."}, zerolog.Nop())

		reply, err := svc.Reply(context.Background(), "what do you do?", "")
		require.NoError(t, err)
		require.Equal(t, "We run education programs.", reply)
	})

	t.Run("should fall back when no model is configured", func(t *testing.T) {
		svc := NewChatService(nil, zerolog.Nop())

		reply, err := svc.Reply(context.Background(), "hello", "")
		require.NoError(t, err)
		require.Contains(t, reply, "I'm the AI assistant")
	})

	t.Run("should downgrade model failures to the fallback", func(t *testing.T) {
		svc := NewChatService(&fakeModel{err: errBoom}, zerolog.Nop())

		reply, err := svc.Reply(context.Background(), "how do I donate?", "")
		require.NoError(t, err)
		require.Contains(t, reply, "supporting our cause")
	})
}
