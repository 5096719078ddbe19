package service

import (
	"context"
	"time"
)

const chatSystemPrompt = "You are a helpful personal-finance assistant. Answer briefly and practically. " +
	"You may discuss budgeting, groceries, meal planning, fuel prices and local events."

// ChatService is the passthrough chat call: one request, one response, a
// timeout, and no structural validation of the reply.
type ChatService struct {
	provider TextGenerator
	timeout  time.Duration
}

func NewChatService(provider TextGenerator, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatService{provider: provider, timeout: timeout}
}

// Send forwards the user's message to the provider and returns the raw reply.
func (s *ChatService) Send(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", NewValidationError("message is required")
	}

	chatCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.provider.GenerateContent(chatCtx, chatSystemPrompt, message)
	if err != nil {
		return "", AsError(err)
	}
	return reply, nil
}
