// Package ai adapts the OpenRouter chat-completion API to the
// TextCompleter port.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
)

// Ensure OpenRouterCompleter implements TextCompleter
var _ driven.TextCompleter = (*OpenRouterCompleter)(nil)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-4o-mini"

	// defaultTimeout bounds the single completion attempt; on expiry
	// the caller takes its fallback path
	defaultTimeout = 20 * time.Second
)

// Config holds OpenRouter connection settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenRouterCompleter implements TextCompleter against OpenRouter's
// OpenAI-compatible endpoint
type OpenRouterCompleter struct {
	client     *openai.Client
	httpClient *http.Client
	model      string
}

// NewOpenRouterCompleter creates a new OpenRouter completer
func NewOpenRouterCompleter(cfg Config) (*OpenRouterCompleter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = httpClient

	return &OpenRouterCompleter{
		client:     openai.NewClientWithConfig(clientConfig),
		httpClient: httpClient,
		model:      cfg.Model,
	}, nil
}

// Complete sends the prompt pair and returns the generated text.
// A single attempt, no retries.
func (c *OpenRouterCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping verifies the completion endpoint is reachable with a minimal
// request
func (c *OpenRouterCompleter) Ping(ctx context.Context) error {
	_, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Hello, this is a test message."},
		},
		MaxTokens: 10,
	})
	return err
}

// Model returns the model name being used
func (c *OpenRouterCompleter) Model() string {
	return c.model
}

// Close releases resources held by the completer
func (c *OpenRouterCompleter) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
