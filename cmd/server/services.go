package main

import (
	"fmt"

	"codeberg.org/codementor/server/internal/assistant"
	"codeberg.org/codementor/server/internal/config"
	"codeberg.org/codementor/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	completer, err := llm.New(llm.Config{
		Provider:  llm.Provider(cfg.LLMProvider),
		APIKey:    cfg.LLMAPIKey,
		Model:     cfg.LLMModel,
		BaseURL:   cfg.LLMBaseURL,
		MaxTokens: cfg.LLMMaxTokens,
		Timeout:   cfg.LLMTimeout,
		RateLimit: cfg.LLMRateLimit,
		RateBurst: cfg.LLMRateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Services{
		Completer: completer,
		Assistant: assistant.New(completer),
	}, nil
}
