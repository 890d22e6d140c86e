package llm

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	defaultAnthropicBaseURL   = "https://api.anthropic.com"
	defaultAnthropicModel     = "claude-3-haiku-20240307"
	defaultAnthropicMaxTokens = 1500
	anthropicVersion          = "2023-06-01"
)

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// messages API client; max_tokens is mandatory for this provider
type AnthropicClient struct {
	config     Config
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewAnthropicClient(config Config) *AnthropicClient {
	if config.Model == "" {
		config.Model = defaultAnthropicModel
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = defaultAnthropicMaxTokens
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	return &AnthropicClient{
		config:     config,
		url:        strings.TrimSuffix(baseURL, "/") + "/v1/messages",
		httpClient: newHTTPClient(config.Timeout),
		limiter:    newRateLimiter(config.RateLimit, config.RateBurst),
	}
}

func (c *AnthropicClient) Model() string {
	return c.config.Model
}

func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if c.config.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	reply, err := postJSON(ctx, c.httpClient, c.limiter, c.url, map[string]string{
		"x-api-key":         c.config.APIKey,
		"anthropic-version": anthropicVersion,
	}, messagesRequest{
		Model:     c.config.Model,
		MaxTokens: maxTokens,
		System:    req.SystemPrompt,
		Messages:  req.Messages,
	})
	if err != nil {
		return nil, err
	}

	return completionFromReply(reply, c.config.Model)
}
