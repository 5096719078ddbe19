package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/wisewallet/backend/config"
	"github.com/wisewallet/backend/internal/logger"
)

// TextGenerator is the outbound contract with the generative text provider.
// Implementations must honour ctx cancellation; the caller owns the timeout.
type TextGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// chatMessage is one turn of a chat-completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the DeepSeek chat-completions request body.
type chatRequest struct {
	Model            string            `json:"model"`
	Messages         []chatMessage     `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format,omitempty"`
	Temperature      float64           `json:"temperature,omitempty"`
	TopP             float64           `json:"top_p,omitempty"`
	FrequencyPenalty float64           `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64           `json:"presence_penalty,omitempty"`
}

// DeepSeekClient talks to a DeepSeek-compatible chat-completions endpoint.
type DeepSeekClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewDeepSeekClient creates a provider client from configuration.
func NewDeepSeekClient(cfg *config.Config, log *logger.Logger) *DeepSeekClient {
	return &DeepSeekClient{
		apiKey:     cfg.DeepSeekKey,
		apiURL:     cfg.DeepSeekURL,
		model:      "deepseek-chat",
		httpClient: http.DefaultClient,
		log:        log,
	}
}

// GenerateContent sends a system+user prompt pair and returns the raw message
// content. Timeouts and rate limits surface as retryable unavailable errors;
// everything else is internal.
func (c *DeepSeekClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.9,
		TopP:           0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", NewUnavailableError("generative provider timed out")
		}
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", NewUnavailableError("generative provider rate limited the request")
	case resp.StatusCode != http.StatusOK:
		c.log.Error("provider request failed", "status", resp.StatusCode, "body", string(body))
		return "", NewInternalError("provider request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", NewInternalError("no choices in provider response")
	}

	return result.Choices[0].Message.Content, nil
}
