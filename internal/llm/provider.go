package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// Provider defines the interface for LLM coach providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Commentate generates coaching commentary for a report with strict word mode
	Commentate(ctx context.Context, req CommentaryRequest) (*CommentaryResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CommentaryRequest contains the input for coach commentary
type CommentaryRequest struct {
	// Report is the oneaway analysis report to commentate
	Report model.Report

	// AllowedWords is the STRICT allowlist of puzzle words the coach can
	// reference. This prevents hallucination: the coach cannot bring in
	// words that are not on the board.
	AllowedWords []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CommentaryResponse contains the coach's output
type CommentaryResponse struct {
	// Commentary is the generated commentary text
	Commentary string

	// UsedWords are the puzzle words the coach actually referenced (for verification)
	UsedWords []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictWords enforces the puzzle word allowlist (should always be true)
	StrictWords bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "", // Disabled by default
		Model:       "",
		Timeout:     30,
		StrictWords: true, // CRITICAL: Always enforce
		MaxTokens:   800,
	}
}

// BuildPrompt constructs the default coaching prompt with strict word mode
func BuildPrompt(report model.Report, allowedWords []string) string {
	prompt := fmt.Sprintf(`You are commentating on a oneaway deduction report. oneaway tracks "one away" results in a 16-word grouping puzzle and derives which words are provably grouped - it never sees the answer key.

CRITICAL RULES:
1. When you mention a puzzle word, write it in ALL CAPS, and ONLY use words from this allowed list:
%s

2. DO NOT invent, infer, or mention any word outside this list.
3. Never claim to know the hidden groups. Only restate what the deductions support.
4. Focus on WHAT THE GUESSES PROVE, using phrases like:
   - "Every surviving hypothesis keeps X and Y together..."
   - "The guesses so far rule out..."
   - "No certainty yet about..."

Report Summary:
- Subject: %s
- Guesses logged: %d
- Deductions: %d
- Possible groups remaining: %d

Engine insights:
`, joinWords(allowedWords), report.Subject, len(report.Guesses), len(report.Analysis.Deductions), len(report.Analysis.PossibleGroups))

	// Add top 3 insights
	for i, insight := range report.Analysis.Insights {
		if i >= 3 {
			break
		}
		prompt += fmt.Sprintf("- %s\n", insight)
	}

	prompt += "\nProvide a 3-4 sentence coaching note suggesting what a useful next guess would clarify, without asserting anything the deductions do not prove."

	return prompt
}

// Helper functions

func joinWords(words []string) string {
	if len(words) == 0 {
		return "(No puzzle words available)"
	}
	result := ""
	for _, w := range words {
		result += fmt.Sprintf("\n- %s", strings.ToUpper(w))
	}
	return result
}

func containsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
