// Package anthropic is an exercise source backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	explainMaxTokens = 1024
	defaultMaxTokens = 4096
)

type messageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client generates exercises and explanations with Claude.
type Client struct {
	messages  messageCreator
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client. SDK retries are disabled; the caller retries.
func New(apiKey, model string, maxTokens int, timeout time.Duration, logger *slog.Logger) *Client {
	sdk := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	)
	return newClient(&sdk.Messages, model, maxTokens, logger)
}

func newClient(m messageCreator, model string, maxTokens int, logger *slog.Logger) *Client {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		messages:  m,
		model:     model,
		maxTokens: int64(maxTokens),
		log:       logger.With("adapter", "anthropic"),
	}
}

// Name identifies the source in logs and metrics.
func (c *Client) Name() string { return "anthropic" }

// Generate asks the model for a batch of exercises.
func (c *Client) Generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error) {
	text, err := c.complete(ctx, provider.ExercisePrompt(req), c.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("anthropic: generate: %w", err)
	}

	exercises, err := provider.ParseExercises(text)
	if err != nil {
		c.log.WarnContext(ctx, "anthropic unparseable response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("anthropic: generate: %w", err)
	}
	return exercises, nil
}

// Explain asks the model to explain a sentence.
func (c *Client) Explain(ctx context.Context, req provider.ExplainRequest) (string, error) {
	text, err := c.complete(ctx, provider.ExplainPrompt(req), explainMaxTokens)
	if err != nil {
		return "", fmt.Errorf("anthropic: explain: %w", err)
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	msg, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &provider.StatusError{Code: apiErr.StatusCode, Err: err}
		}
		return "", err
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty completion: %w", provider.ErrMalformedResponse)
	}
	return msg.Content[0].Text, nil
}
