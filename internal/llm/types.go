package llm

import (
	"context"
	"time"
)

// represents different LLM providers
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// sends one completion request and returns the assistant text
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Model() string
}

// role-tagged chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int // overrides Config.MaxTokens when non-zero
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type Completion struct {
	Text  string
	Usage *Usage
	Model string
}

// holds configuration for a provider client
type Config struct {
	Provider  Provider
	APIKey    string
	Model     string
	BaseURL   string        // empty means the provider's public endpoint
	MaxTokens int           // 0 omits the cap where the provider allows it
	Timeout   time.Duration // total request timeout
	RateLimit float64       // requests per second, 0 disables
	RateBurst int
}
