package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	defaultPort           = "8080"
	defaultOpenAIModel    = "gpt-5-nano"
	defaultAnthropicModel = "claude-3-haiku-20240307"
	defaultMaxTokens      = 1500
	defaultTimeout        = 60 * time.Second
	defaultLLMRateLimit   = 10
	defaultLLMRateBurst   = 5
	defaultRateLimit      = "60-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return loadFromEnv()
}

func loadFromEnv() (*Config, error) {
	provider := strings.ToLower(getenvDefault("LLM_PROVIDER", ProviderOpenAI))

	var apiKey, model string

	switch provider {
	case ProviderOpenAI:
		model = defaultOpenAIModel
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	case ProviderAnthropic:
		model = defaultAnthropicModel
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", provider)
	}

	maxTokens, err := getenvInt("LLM_MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		return nil, err
	}

	if maxTokens < 0 {
		return nil, fmt.Errorf("LLM_MAX_TOKENS must not be negative")
	}

	timeoutSeconds, err := getenvInt("LLM_TIMEOUT_SECONDS", int(defaultTimeout/time.Second))
	if err != nil {
		return nil, err
	}

	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT_SECONDS must be positive")
	}

	rateLimit := float64(defaultLLMRateLimit)
	if raw := os.Getenv("LLM_RATE_LIMIT"); raw != "" {
		rateLimit, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_RATE_LIMIT %q: %w", raw, err)
		}
	}

	rateBurst, err := getenvInt("LLM_RATE_BURST", defaultLLMRateBurst)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               getenvDefault("PORT", defaultPort),
		Environment:        getenvDefault("ENVIRONMENT", "development"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		LLMProvider:        provider,
		LLMAPIKey:          apiKey,
		LLMModel:           getenvDefault("LLM_MODEL", model),
		LLMBaseURL:         os.Getenv("LLM_BASE_URL"),
		LLMMaxTokens:       maxTokens,
		LLMTimeout:         time.Duration(timeoutSeconds) * time.Second,
		LLMRateLimit:       rateLimit,
		LLMRateBurst:       rateBurst,
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		RateLimit:          getenvDefault("RATE_LIMIT", defaultRateLimit),
		RedisURL:           os.Getenv("REDIS_URL"),
		SessionCookieName:  os.Getenv("SESSION_COOKIE_NAME"),
		SecretKey:          os.Getenv("SECRET_KEY"),
	}, nil
}

// reports whether the relay runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}

	return val, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
