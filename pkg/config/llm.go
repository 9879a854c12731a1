package config

import (
	"fmt"
	"os"
)

// LLMProvider identifies the LLM provider type.
type LLMProvider string

const (
	LLMProviderGemini LLMProvider = "gemini"
	LLMProviderOpenAI LLMProvider = "openai"
)

// LLMConfig configures the LLM provider used by the reasoning step and the
// paper summarizer.
type LLMConfig struct {
	// Provider type (gemini, openai).
	Provider LLMProvider `yaml:"provider,omitempty" json:"provider,omitempty" jsonschema:"title=Provider,description=LLM provider,enum=gemini,enum=openai,default=gemini"`

	// Model name (e.g., "gemini-2.5-flash", "gpt-4o").
	Model string `yaml:"model,omitempty" json:"model,omitempty" jsonschema:"title=Model,description=Model identifier"`

	// APIKey for authentication. Falls back to the provider's environment
	// variable (GEMINI_API_KEY / GOOGLE_API_KEY, OPENAI_API_KEY).
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty" jsonschema:"title=API Key,description=API key for authentication"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty" jsonschema:"title=Base URL,description=Custom base URL for the API endpoint"`

	// Temperature for generation.
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty" jsonschema:"title=Temperature,description=Sampling temperature,minimum=0,maximum=2,default=0.7"`

	// MaxTokens limits response length.
	MaxTokens int `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty" jsonschema:"title=Max Tokens,description=Maximum tokens to generate,minimum=1,default=4096"`

	// TimeoutSeconds bounds each LLM request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty" jsonschema:"title=Timeout,description=Request timeout in seconds,minimum=1,default=120"`
}

// SetDefaults applies default values.
func (c *LLMConfig) SetDefaults() {
	if c.Provider == "" {
		c.Provider = detectProviderFromEnv()
	}

	if c.Model == "" {
		switch c.Provider {
		case LLMProviderGemini:
			c.Model = "gemini-2.5-flash"
		case LLMProviderOpenAI:
			c.Model = "gpt-4o"
		}
	}

	if c.APIKey == "" {
		c.APIKey = GetProviderAPIKey(c.Provider)
	}

	if c.BaseURL == "" {
		switch c.Provider {
		case LLMProviderGemini:
			c.BaseURL = "https://generativelanguage.googleapis.com"
		case LLMProviderOpenAI:
			c.BaseURL = "https://api.openai.com/v1"
		}
	}

	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4096
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 120
	}
}

// Validate checks the configuration.
func (c *LLMConfig) Validate() error {
	switch c.Provider {
	case LLMProviderGemini, LLMProviderOpenAI:
	default:
		return fmt.Errorf("unsupported provider: %s (supported: gemini, openai)", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("API key is required for provider %s (set %s)", c.Provider, apiKeyEnvHint(c.Provider))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}
	return nil
}

// detectProviderFromEnv picks a provider based on which API key is present.
func detectProviderFromEnv() LLMProvider {
	if os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "" {
		return LLMProviderGemini
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		return LLMProviderOpenAI
	}
	return LLMProviderGemini
}

// GetProviderAPIKey returns the API key for a provider from the environment.
func GetProviderAPIKey(provider LLMProvider) string {
	switch provider {
	case LLMProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_API_KEY")
	case LLMProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return ""
	}
}

func apiKeyEnvHint(provider LLMProvider) string {
	switch provider {
	case LLMProviderGemini:
		return "GEMINI_API_KEY or GOOGLE_API_KEY"
	case LLMProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return "an API key"
	}
}
