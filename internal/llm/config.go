package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single LLM request including retries.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenRouter and compatible APIs override this
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default provider; it is what the hosted coaching product runs on, so
// its output quirks are the best understood.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConfigFromEnv builds a Config from PREPDECK_* environment variables,
// keeping defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = envOr("PREPDECK_LLM_PROVIDER", cfg.Provider)

	cfg.Gemini.APIKey = envOr("PREPDECK_GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Model = envOr("PREPDECK_GEMINI_MODEL", cfg.Gemini.Model)

	cfg.OpenAI.APIKey = envOr("PREPDECK_OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = envOr("PREPDECK_OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = envOr("PREPDECK_OPENAI_BASE_URL", cfg.OpenAI.BaseURL)

	cfg.Anthropic.APIKey = envOr("PREPDECK_ANTHROPIC_API_KEY", cfg.Anthropic.APIKey)
	cfg.Anthropic.Model = envOr("PREPDECK_ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.OpenRouter.APIKey = envOr("PREPDECK_OPENROUTER_API_KEY", cfg.OpenRouter.APIKey)
	cfg.OpenRouter.Model = envOr("PREPDECK_OPENROUTER_MODEL", cfg.OpenRouter.Model)

	return cfg
}

// discoveryOrder lists the standard (non-prefixed) API key variables
// probed when no explicit configuration is present.
var discoveryOrder = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DiscoverConfig returns a Config for the first provider whose
// standard API key variable is set, or false when none is.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoveryOrder {
		key := os.Getenv(d.env)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = d.provider
		switch d.provider {
		case "gemini":
			cfg.Gemini.APIKey = key
		case "openai":
			cfg.OpenAI.APIKey = key
		case "anthropic":
			cfg.Anthropic.APIKey = key
		case "openrouter":
			cfg.OpenRouter.APIKey = key
		}
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	var key, envName string
	switch c.Provider {
	case "gemini":
		key, envName = c.Gemini.APIKey, "PREPDECK_GEMINI_API_KEY"
	case "openai":
		key, envName = c.OpenAI.APIKey, "PREPDECK_OPENAI_API_KEY"
	case "anthropic":
		key, envName = c.Anthropic.APIKey, "PREPDECK_ANTHROPIC_API_KEY"
	case "openrouter":
		key, envName = c.OpenRouter.APIKey, "PREPDECK_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envName, c.Provider)
	}
	return nil
}
