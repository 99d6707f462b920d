package services

import (
	"context"

	"askai-gateway/internal/models"
)

// ChatProvider sends a complete exchange to a chat-completion backend and
// returns the reply text.
type ChatProvider interface {
	Name() string
	Complete(ctx context.Context, messages []models.ChatMessage, temperature float64) (string, error)
}
