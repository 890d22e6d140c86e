package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-5-nano"
)

type chatCompletionRequest struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
}

// chat completions client for OpenAI and compatible endpoints
type OpenAIClient struct {
	config     Config
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewOpenAIClient(config Config) *OpenAIClient {
	if config.Model == "" {
		config.Model = defaultOpenAIModel
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIClient{
		config:     config,
		url:        strings.TrimSuffix(baseURL, "/") + "/chat/completions",
		httpClient: newHTTPClient(config.Timeout),
		limiter:    newRateLimiter(config.RateLimit, config.RateBurst),
	}
}

func (c *OpenAIClient) Model() string {
	return c.config.Model
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if c.config.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	messages := make([]Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, Message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, req.Messages...)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	reply, err := postJSON(ctx, c.httpClient, c.limiter, c.url, map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", c.config.APIKey),
	}, chatCompletionRequest{
		Model:               c.config.Model,
		Messages:            messages,
		MaxCompletionTokens: maxTokens,
	})
	if err != nil {
		return nil, err
	}

	return completionFromReply(reply, c.config.Model)
}
