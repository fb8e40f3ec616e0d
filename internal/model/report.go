package model

import "time"

// Analysis is the fully derived result of running the deduction engine
// over a guess history. It holds no independent state: the same guesses
// always produce the same analysis.
type Analysis struct {
	Deductions     []Deduction `json:"deductions"`      // Tagged inferences, guess order first
	PossibleGroups [][]string  `json:"possible_groups"` // Surviving group hypotheses, each sorted
	Insights       []string    `json:"insights"`        // Human-readable summary lines
}

// Report represents a complete oneaway session report
type Report struct {
	Subject    string    `json:"subject"`     // Subject of the report (e.g., session file stem)
	SessionRef string    `json:"session_ref"` // Path of the session that was analyzed
	AnalyzedAt time.Time `json:"analyzed_at"` // When the analysis occurred

	Puzzle  []string `json:"puzzle"`  // The 16-word roster
	Guesses []Guess  `json:"guesses"` // One-away guesses in submission order

	Analysis Analysis `json:"analysis"` // Engine output

	Coach *CoachSummary `json:"coach,omitempty"` // Optional LLM commentary (never affects the analysis)
}

// CoachSummary contains optional LLM-generated commentary
// CRITICAL: This never affects the analysis and is clearly separated
type CoachSummary struct {
	Enabled     bool     `json:"enabled"`
	Provider    string   `json:"provider,omitempty"`   // openai, anthropic, ollama
	Model       string   `json:"model,omitempty"`      // Model name
	StrictWords bool     `json:"strict_words"`         // Whether word allowlist enforcement was enabled
	CommentMD   string   `json:"comment_md,omitempty"` // Markdown commentary
	Warnings    []string `json:"warnings,omitempty"`   // Any issues (e.g., off-roster words detected)
}

// SubjectFromPath derives a report subject from a session path by
// stripping directories and the file extension.
func SubjectFromPath(path string) string {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
			break
		}
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
