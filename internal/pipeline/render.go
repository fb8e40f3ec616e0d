package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// Renderer writes reports to disk as JSON or Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a human-readable Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0644)
}

// Markdown renders the report body
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# oneaway Report: %s\n\n", report.Subject))
	b.WriteString(fmt.Sprintf("- Session: `%s`\n", report.SessionRef))
	b.WriteString(fmt.Sprintf("- Analyzed: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC")))
	b.WriteString(fmt.Sprintf("- Guesses logged: %d\n\n", len(report.Guesses)))

	b.WriteString("## Puzzle\n\n")
	for row := 0; row+4 <= len(report.Puzzle); row += 4 {
		b.WriteString(fmt.Sprintf("| %s |\n", strings.Join(report.Puzzle[row:row+4], " | ")))
		if row == 0 {
			b.WriteString("|---|---|---|---|\n")
		}
	}
	b.WriteString("\n")

	if len(report.Guesses) > 0 {
		b.WriteString("## Guesses\n\n")
		for _, g := range report.Guesses {
			b.WriteString(fmt.Sprintf("- **%s**: %s (one away)\n", g.ID, strings.Join(g.Words, ", ")))
		}
		b.WriteString("\n")
	}

	if len(report.Analysis.Deductions) > 0 {
		b.WriteString("## Deductions\n\n")
		for _, d := range report.Analysis.Deductions {
			b.WriteString(fmt.Sprintf("- `%s`: %s", d.Kind, strings.Join(d.Words, ", ")))
			if len(d.Sources) > 0 {
				b.WriteString(fmt.Sprintf(" _(from %s)_", strings.Join(d.Sources, ", ")))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Possible Groups\n\n")
	if len(report.Analysis.PossibleGroups) == 0 {
		b.WriteString("_None consistent with the logged guesses (they may describe different hidden groups)._\n\n")
	} else {
		for _, group := range report.Analysis.PossibleGroups {
			b.WriteString(fmt.Sprintf("- %s\n", strings.Join(group, ", ")))
		}
		b.WriteString("\n")
	}

	if len(report.Analysis.Insights) > 0 {
		b.WriteString("## Insights\n\n")
		for _, insight := range report.Analysis.Insights {
			b.WriteString(fmt.Sprintf("- %s\n", insight))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("_Generated by oneaway. Deductions describe what the guesses prove, not the answer key._\n")
	}

	return b.String()
}

// RenderCoachMarkdown writes pre-rendered coach commentary
func (r *Renderer) RenderCoachMarkdown(markdown string, path string) error {
	return os.WriteFile(path, []byte(markdown), 0644)
}
