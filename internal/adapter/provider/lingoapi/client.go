// Package lingoapi is the HTTP exercise source: a generation service that
// produces translation exercises and sentence explanations.
package lingoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

const (
	generatePath = "/generate_exercises_simple"
	explainPath  = "/explain"

	maxErrorBody = 512
)

// Client calls the generation service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. An empty apiKey sends no Authorization header.
func New(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "lingoapi"),
	}
}

// Name identifies the source in logs and metrics.
func (c *Client) Name() string { return "http" }

type generateRequest struct {
	FromLanguage   string   `json:"from_language"`
	ToLanguage     string   `json:"to_language"`
	SentenceLength int      `json:"sentence_length"`
	Subject        string   `json:"subject"`
	Count          int      `json:"count"`
	Avoid          []string `json:"avoid,omitempty"`
}

type explainRequest struct {
	Sentence     string `json:"sentence"`
	FromLanguage string `json:"from_language"`
	ToLanguage   string `json:"to_language"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// Generate requests a batch of exercises.
func (c *Client) Generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error) {
	c.log.DebugContext(ctx, "lingoapi generate",
		slog.String("from", req.FromLanguage),
		slog.String("to", req.ToLanguage),
		slog.Int("count", req.Count),
	)

	var payload provider.ExercisesPayload
	err := c.post(ctx, generatePath, generateRequest{
		FromLanguage:   req.FromLanguage,
		ToLanguage:     req.ToLanguage,
		SentenceLength: req.SentenceLength,
		Subject:        req.Theme,
		Count:          req.Count,
		Avoid:          req.Avoid,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("lingoapi: generate: %w", err)
	}

	exercises := payload.ToExercises()
	c.log.DebugContext(ctx, "lingoapi response", slog.Int("exercises", len(exercises)))
	return exercises, nil
}

// Explain requests an explanation of a target sentence.
func (c *Client) Explain(ctx context.Context, req provider.ExplainRequest) (string, error) {
	var resp explainResponse
	err := c.post(ctx, explainPath, explainRequest{
		Sentence:     req.Sentence,
		FromLanguage: req.FromLanguage,
		ToLanguage:   req.ToLanguage,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("lingoapi: explain: %w", err)
	}
	return resp.Explanation, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "lingoapi unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return &provider.StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode json: %w: %v", provider.ErrMalformedResponse, err)
	}
	return nil
}
