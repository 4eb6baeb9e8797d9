// Package openai is an exercise source backed by an OpenAI-compatible chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

const systemPrompt = "You are a careful language teacher. Follow the output format exactly."

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client generates exercises and explanations through chat completions.
type Client struct {
	chat      chatCompleter
	model     string
	maxTokens int
	log       *slog.Logger
}

// New creates a Client. A non-empty baseURL targets a compatible server
// instead of api.openai.com.
func New(apiKey, baseURL, model string, maxTokens int, timeout time.Duration, logger *slog.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return newClient(openai.NewClientWithConfig(cfg), model, maxTokens, logger)
}

func newClient(chat chatCompleter, model string, maxTokens int, logger *slog.Logger) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		chat:      chat,
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "openai"),
	}
}

// Name identifies the source in logs and metrics.
func (c *Client) Name() string { return "openai" }

// Generate asks the model for a batch of exercises in JSON mode.
func (c *Client) Generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error) {
	text, err := c.complete(ctx, provider.ExercisePrompt(req), true)
	if err != nil {
		return nil, fmt.Errorf("openai: generate: %w", err)
	}

	exercises, err := provider.ParseExercises(text)
	if err != nil {
		c.log.WarnContext(ctx, "openai unparseable response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai: generate: %w", err)
	}
	return exercises, nil
}

// Explain asks the model to explain a sentence.
func (c *Client) Explain(ctx context.Context, req provider.ExplainRequest) (string, error) {
	text, err := c.complete(ctx, provider.ExplainPrompt(req), false)
	if err != nil {
		return "", fmt.Errorf("openai: explain: %w", err)
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: c.maxTokens,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := c.chat.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &provider.StatusError{Code: apiErr.HTTPStatusCode, Err: err}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &provider.StatusError{Code: reqErr.HTTPStatusCode, Err: err}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices: %w", provider.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
