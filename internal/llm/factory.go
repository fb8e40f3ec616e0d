package llm

import (
	"fmt"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - coach disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.CoachConfig to llm.Config
func ConfigFromModel(coachConfig model.CoachConfig) Config {
	return Config{
		Provider:    coachConfig.Provider,
		Model:       coachConfig.Model,
		APIKey:      coachConfig.APIKey,
		BaseURL:     coachConfig.BaseURL,
		Timeout:     coachConfig.Timeout,
		StrictWords: coachConfig.StrictWords,
		MaxTokens:   coachConfig.MaxTokens,
		HTTPProxy:   coachConfig.HTTPProxy,
		HTTPSProxy:  coachConfig.HTTPSProxy,
		NoProxy:     coachConfig.NoProxy,
	}
}
