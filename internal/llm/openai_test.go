package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIComplete(t *testing.T) {
	var captured chatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"model":"gpt-5-nano-2025","choices":[{"message":{"content":"check file:foo.py:1"}}],"usage":{"prompt_tokens":12,"completion_tokens":4,"total_tokens":16}}`) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1/", MaxTokens: 1500})

	resp, err := client.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "system rules",
		Messages:     []Message{{Role: "user", Content: "why?"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "check file:foo.py:1", resp.Text)
	assert.Equal(t, "gpt-5-nano-2025", resp.Model)
	assert.Equal(t, &Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}, resp.Usage)

	assert.Equal(t, "gpt-5-nano", captured.Model)
	assert.Equal(t, 1500, captured.MaxCompletionTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, Message{Role: "system", Content: "system rules"}, captured.Messages[0])
	assert.Equal(t, Message{Role: "user", Content: "why?"}, captured.Messages[1])
}

func TestOpenAIOmitsMaxTokensWhenZero(t *testing.T) {
	var raw map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = io.WriteString(w, `{"choices":[{"text":"ok"}]}`) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Model: "gpt-5-mini"})

	resp, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "q"}}})
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, "gpt-5-mini", resp.Model)
	assert.NotContains(t, raw, "max_completion_tokens")
}

func TestOpenAIStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided"}}`) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "sk-bad", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "q"}}})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
	assert.False(t, errors.Is(err, ErrUnexpectedResponse))
}

func TestOpenAIUnexpectedBody(t *testing.T) {
	for _, body := range []string{`{"choices":[]}`, `not json`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, body) //nolint:errcheck
		}))

		client := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL})
		_, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "q"}}})
		srv.Close()

		assert.True(t, errors.Is(err, ErrUnexpectedResponse), body)
	}
}

func TestOpenAITimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{"choices":[{"text":"late"}]}`) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "q"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(Config{}).Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestNewSelectsProvider(t *testing.T) {
	c, err := New(Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = New(Config{Provider: ProviderAnthropic, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, c)
	assert.Equal(t, defaultAnthropicModel, c.Model())

	_, err = New(Config{Provider: "gemini", APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{Provider: ProviderOpenAI})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestRateLimiterDisabled(t *testing.T) {
	l := newRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow())
	}
}
