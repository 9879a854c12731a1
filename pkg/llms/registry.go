// Package llms provides LLM provider implementations behind a common
// interface: Gemini (generateContent REST API) and OpenAI-compatible chat
// completions, both with native function calling.
package llms

import (
	"context"
	"fmt"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
	"github.com/dbhatt90/ai-research-assistant/pkg/registry"
)

// LLMProvider is the interface all LLM providers implement.
type LLMProvider interface {
	// Generate performs a non-streaming request.
	// Returns text, tool calls, total token count, and error.
	Generate(ctx context.Context, messages []Message, tools []ToolDefinition) (text string, toolCalls []ToolCall, tokens int, err error)

	GetModelName() string

	GetMaxTokens() int

	GetTemperature() float64

	Close() error
}

// LLMRegistry manages named LLM providers.
type LLMRegistry struct {
	*registry.BaseRegistry[LLMProvider]
}

func NewLLMRegistry() *LLMRegistry {
	return &LLMRegistry{
		BaseRegistry: registry.NewBaseRegistry[LLMProvider](),
	}
}

func (r *LLMRegistry) RegisterLLM(name string, provider LLMProvider) error {
	if name == "" {
		return fmt.Errorf("LLM name cannot be empty")
	}
	if provider == nil {
		return fmt.Errorf("LLM provider cannot be nil")
	}
	return r.Register(name, provider)
}

// CreateLLMFromConfig instantiates a provider from configuration and
// registers it under the given name.
func (r *LLMRegistry) CreateLLMFromConfig(name string, cfg *config.LLMConfig) (LLMProvider, error) {
	if name == "" {
		return nil, fmt.Errorf("LLM name cannot be empty")
	}
	if cfg == nil {
		return nil, fmt.Errorf("LLM config cannot be nil")
	}

	provider, err := NewProviderFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := r.RegisterLLM(name, provider); err != nil {
		return nil, fmt.Errorf("failed to register LLM: %w", err)
	}

	return provider, nil
}

// NewProviderFromConfig instantiates a provider without registering it.
func NewProviderFromConfig(cfg *config.LLMConfig) (LLMProvider, error) {
	switch cfg.Provider {
	case config.LLMProviderGemini:
		return NewGeminiProviderFromConfig(cfg)
	case config.LLMProviderOpenAI:
		return NewOpenAIProviderFromConfig(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: gemini, openai)", cfg.Provider)
	}
}

func (r *LLMRegistry) GetLLM(name string) (LLMProvider, error) {
	provider, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("LLM provider '%s' not found", name)
	}
	return provider, nil
}
