package config

import "time"

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// outbound LLM provider
	LLMProvider  string
	LLMAPIKey    string
	LLMModel     string
	LLMBaseURL   string
	LLMMaxTokens int
	LLMTimeout   time.Duration
	LLMRateLimit float64 // requests per second, 0 disables
	LLMRateBurst int

	// inbound HTTP surface
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "60-M"
	RedisURL           string

	// surfaced for the hosting layer, unused by the relay itself
	SessionCookieName string
	SecretKey         string
}

// flags for the codeask terminal client
type AskFlags struct {
	Dir             string
	Server          string
	Tone            string
	AllowPseudocode bool
	NoClarifying    bool
	IncludeAll      bool
	MaxFiles        int
	Timeout         time.Duration
	Query           string
}
