package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/quadline/oneaway/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *CommentaryResponse
	err       error
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Commentate(ctx context.Context, req CommentaryRequest) (*CommentaryResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func TestNewCoach_DisabledProvider(t *testing.T) {
	coach, err := NewCoach(Config{Provider: ""})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if coach.IsEnabled() {
		t.Error("expected coach to be disabled")
	}
	if coach.ProviderName() != "" {
		t.Error("expected empty provider name when disabled")
	}

	summary, err := coach.GenerateCommentary(context.Background(), model.Report{Subject: "test"})
	if err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
	if summary != nil {
		t.Error("expected nil summary when disabled")
	}
}

func TestNewCoach_UnknownProvider(t *testing.T) {
	if _, err := NewCoach(Config{Provider: "gopher-9000"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestCoach_ProviderUnavailable(t *testing.T) {
	coach := &Coach{
		provider: &MockProvider{name: "test-provider", available: false},
		config:   Config{StrictWords: true},
	}

	summary, err := coach.GenerateCommentary(context.Background(), model.Report{Subject: "test"})
	if err != nil {
		t.Fatalf("unavailable provider must not fail the run: %v", err)
	}
	if summary == nil || len(summary.Warnings) == 0 {
		t.Fatalf("expected a warning summary, got %+v", summary)
	}
	if summary.CommentMD != "" {
		t.Error("expected no commentary from an unavailable provider")
	}
}

func TestCoach_WordLeakBecomesWarning(t *testing.T) {
	coach := &Coach{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			err:       errors.New("WORD LEAK: coach referenced off-roster words: GUITAR"),
		},
		config: Config{StrictWords: true},
	}

	summary, err := coach.GenerateCommentary(context.Background(), model.Report{Subject: "test"})
	if err != nil {
		t.Fatalf("a word leak must degrade to a warning: %v", err)
	}
	if summary == nil || len(summary.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %+v", summary)
	}
	if !strings.Contains(summary.Warnings[0], "GUITAR") {
		t.Errorf("expected the leaked word in the warning, got %q", summary.Warnings[0])
	}
}

func TestCoach_SuccessfulCommentary(t *testing.T) {
	coach := &Coach{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			response: &CommentaryResponse{
				Commentary: "Every surviving hypothesis keeps BASS and SOLE together.",
				UsedWords:  []string{"BASS", "SOLE"},
				Model:      "test-model",
			},
		},
		config: Config{StrictWords: true},
	}

	summary, err := coach.GenerateCommentary(context.Background(), model.Report{Subject: "test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary == nil || summary.CommentMD == "" {
		t.Fatalf("expected commentary, got %+v", summary)
	}
	if summary.Model != "test-model" {
		t.Errorf("expected model from response, got %q", summary.Model)
	}
}

func TestExtractCapsWords(t *testing.T) {
	text := "Keep BASS and SOLE together; T-SHIRT is unresolved. DO NOT guess yet. BASS again."

	got := extractCapsWords(text)
	want := []string{"BASS", "SOLE", "T-SHIRT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestVerifyAllowedWords(t *testing.T) {
	allowed := []string{"Bass", "Sole", "Trout"}

	leaked := verifyAllowedWords([]string{"BASS", "SOLE", "GUITAR"}, allowed)
	if !reflect.DeepEqual(leaked, []string{"GUITAR"}) {
		t.Errorf("expected [GUITAR], got %v", leaked)
	}

	if leaked := verifyAllowedWords([]string{"TROUT"}, allowed); leaked != nil {
		t.Errorf("case-insensitive match expected, got %v", leaked)
	}
}

func TestBuildPrompt_ContainsAllowlistAndInsights(t *testing.T) {
	report := model.Report{
		Subject: "daily-042",
		Puzzle:  []string{"BASS", "SOLE"},
		Analysis: model.Analysis{
			Insights: []string{"2 possible groups remain."},
		},
	}

	prompt := BuildPrompt(report, report.Puzzle)

	if !strings.Contains(prompt, "- BASS") || !strings.Contains(prompt, "- SOLE") {
		t.Error("expected the allowlist in the prompt")
	}
	if !strings.Contains(prompt, "2 possible groups remain.") {
		t.Error("expected engine insights in the prompt")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	md := RenderSeparateMarkdown(&model.CoachSummary{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		CommentMD: "Solid progress.",
		Warnings:  []string{"something odd"},
	})

	if !strings.Contains(md, "Solid progress.") {
		t.Error("expected commentary body in markdown")
	}
	if !strings.Contains(md, "## Warnings") {
		t.Error("expected warnings section in markdown")
	}
}
