package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// Coach wraps a Provider and turns analysis reports into optional
// commentary. A Coach with no provider is valid and does nothing; an
// unavailable provider degrades to a warning instead of failing the
// run. Commentary never feeds back into the engine.
type Coach struct {
	provider Provider
	config   Config
}

// NewCoach creates a coach from configuration. An empty provider name
// yields a disabled coach.
func NewCoach(config Config) (*Coach, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Coach{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (c *Coach) IsEnabled() bool {
	return c.provider != nil
}

// ProviderName returns the configured provider's name, or "" if disabled
func (c *Coach) ProviderName() string {
	if c.provider == nil {
		return ""
	}
	return c.provider.Name()
}

// GenerateCommentary produces a CoachSummary for the report. Returns
// (nil, nil) when the coach is disabled.
func (c *Coach) GenerateCommentary(ctx context.Context, report model.Report) (*model.CoachSummary, error) {
	if c.provider == nil {
		return nil, nil
	}

	if !c.provider.IsAvailable(ctx) {
		return &model.CoachSummary{
			Enabled:     true,
			Provider:    c.provider.Name(),
			StrictWords: c.config.StrictWords,
			Warnings:    []string{fmt.Sprintf("provider %s is not available; commentary skipped", c.provider.Name())},
		}, nil
	}

	resp, err := c.provider.Commentate(ctx, CommentaryRequest{
		Report:       report,
		AllowedWords: report.Puzzle,
		Model:        c.config.Model,
		MaxTokens:    c.config.MaxTokens,
	})
	if err != nil {
		// A word leak means the commentary cannot be trusted; report it
		// as a warning rather than failing the whole analysis.
		if strings.Contains(err.Error(), "WORD LEAK") {
			return &model.CoachSummary{
				Enabled:     true,
				Provider:    c.provider.Name(),
				Model:       c.config.Model,
				StrictWords: c.config.StrictWords,
				Warnings:    []string{err.Error()},
			}, nil
		}
		return nil, fmt.Errorf("generate commentary: %w", err)
	}

	return &model.CoachSummary{
		Enabled:     true,
		Provider:    c.provider.Name(),
		Model:       resp.Model,
		StrictWords: c.config.StrictWords,
		CommentMD:   resp.Commentary,
	}, nil
}

// RenderSeparateMarkdown renders a coach summary as a standalone
// Markdown document, clearly separated from the engine's report.
func RenderSeparateMarkdown(coach *model.CoachSummary) string {
	var b strings.Builder

	b.WriteString("# Coach Commentary\n\n")
	b.WriteString(fmt.Sprintf("_Generated by %s/%s. Commentary never affects the deductions._\n\n", coach.Provider, coach.Model))

	if coach.CommentMD != "" {
		b.WriteString(coach.CommentMD)
		b.WriteString("\n")
	}

	if len(coach.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range coach.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
