package openai

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

type chatCompleterMock struct {
	CreateChatCompletionFunc func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	calls                    []openai.ChatCompletionRequest
}

func (m *chatCompleterMock) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.calls = append(m.calls, req)
	return m.CreateChatCompletionFunc(ctx, req)
}

func reply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
		{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
	}}
}

func newTestClient(m chatCompleter) *Client {
	return newClient(m, "", 512, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Generate(t *testing.T) {
	t.Parallel()

	mock := &chatCompleterMock{CreateChatCompletionFunc: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return reply(`{"exercises": [{"from": "Thank you", "to": "ありがとう"}]}`), nil
	}}

	got, err := newTestClient(mock).Generate(context.Background(), provider.ExerciseRequest{
		FromLanguage: "English", ToLanguage: "Japanese", SentenceLength: 1, Count: 1,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ありがとう", got[0].TargetSentence)

	require.Len(t, mock.calls, 1)
	call := mock.calls[0]
	assert.Equal(t, openai.GPT4oMini, call.Model)
	assert.Equal(t, 512, call.MaxCompletionTokens)
	require.NotNil(t, call.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, call.ResponseFormat.Type)
	assert.Equal(t, openai.ChatMessageRoleSystem, call.Messages[0].Role)
}

func TestClient_Generate_APIError(t *testing.T) {
	t.Parallel()

	mock := &chatCompleterMock{CreateChatCompletionFunc: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}
	}}

	_, err := newTestClient(mock).Generate(context.Background(), provider.ExerciseRequest{Count: 1})

	var se *provider.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.False(t, provider.Retryable(err))
}

func TestClient_Generate_NoChoices(t *testing.T) {
	t.Parallel()

	mock := &chatCompleterMock{CreateChatCompletionFunc: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, nil
	}}

	_, err := newTestClient(mock).Generate(context.Background(), provider.ExerciseRequest{Count: 1})
	assert.ErrorIs(t, err, provider.ErrMalformedResponse)
}

func TestClient_Explain(t *testing.T) {
	t.Parallel()

	mock := &chatCompleterMock{CreateChatCompletionFunc: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return reply("ありがとう is a set phrase."), nil
	}}

	got, err := newTestClient(mock).Explain(context.Background(), provider.ExplainRequest{Sentence: "ありがとう"})
	require.NoError(t, err)
	assert.Equal(t, "ありがとう is a set phrase.", got)
	assert.Nil(t, mock.calls[0].ResponseFormat)
}
