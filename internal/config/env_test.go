package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"LLM_PROVIDER", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "LLM_MODEL", "LLM_BASE_URL",
		"LLM_MAX_TOKENS", "LLM_TIMEOUT_SECONDS", "LLM_RATE_LIMIT", "LLM_RATE_BURST", "PORT",
		"ENVIRONMENT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT", "REDIS_URL",
		"SESSION_COOKIE_NAME", "SECRET_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "sk-test", cfg.LLMAPIKey)
	assert.Equal(t, "gpt-5-nano", cfg.LLMModel)
	assert.Equal(t, 1500, cfg.LLMMaxTokens)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingKey(t *testing.T) {
	clearEnv(t)

	_, err := loadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadAnthropic(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")
	t.Setenv("LLM_MODEL", "claude-3-haiku-20240307")
	t.Setenv("LLM_MAX_TOKENS", "0")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, "ak-test", cfg.LLMAPIKey)
	assert.Equal(t, 0, cfg.LLMMaxTokens)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown provider": {"LLM_PROVIDER", "gemini"},
		"bad max tokens":   {"LLM_MAX_TOKENS", "lots"},
		"zero timeout":     {"LLM_TIMEOUT_SECONDS", "0"},
		"bad rate":         {"LLM_RATE_LIMIT", "fast"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv(kv[0], kv[1])

			_, err := loadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, splitList(" https://a.dev, ,https://b.dev "))
	assert.Empty(t, splitList(""))
}

func TestParseAskFlags(t *testing.T) {
	flags, err := ParseAskFlags([]string{"-dir", "./src", "-pseudocode", "-server", "http://x:1/", "why", "does", "it", "crash?"})
	require.NoError(t, err)

	assert.Equal(t, "./src", flags.Dir)
	assert.True(t, flags.AllowPseudocode)
	assert.Equal(t, "http://x:1", flags.Server)
	assert.Equal(t, "why does it crash?", flags.Query)
	assert.Equal(t, "concise", flags.Tone)
}

func TestParseAskFlagsRequiresQuery(t *testing.T) {
	_, err := ParseAskFlags([]string{"-dir", "."})
	assert.Error(t, err)
}

func TestDefaultModelFollowsProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.LLMModel)
}
