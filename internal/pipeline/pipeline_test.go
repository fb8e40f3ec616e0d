package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/quadline/oneaway/internal/model"
)

const testSession = `
puzzle: [BASS, FLOUNDER, SALMON, TROUT, ANKLE, ELBOW, KNEE, WRIST, PIANO, ORGAN, HARP, FLUTE, SOLE, HEEL, ARCH, BALL]
guesses:
  - [BASS, FLOUNDER, SALMON, SOLE]
  - [BASS, FLOUNDER, SALMON, TROUT]
  - [BASS, FLOUNDER, SALMON, HARP]
`

func writeSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daily-042.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestPipeline_AnalyzeSession(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	report, err := p.AnalyzeSession(context.Background(), writeSession(t, testSession))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Subject != "daily-042" {
		t.Errorf("expected subject from file stem, got %q", report.Subject)
	}
	if len(report.Guesses) != 3 {
		t.Errorf("expected 3 guesses, got %d", len(report.Guesses))
	}
	if len(report.Analysis.Deductions) == 0 {
		t.Error("expected deductions for overlapping guesses")
	}
	if len(report.Analysis.PossibleGroups) == 0 {
		t.Error("expected surviving scenarios for overlapping guesses")
	}
	if report.Coach != nil {
		t.Error("coach is disabled by default")
	}
}

func TestPipeline_AnalyzeSession_BadSession(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	_, err := p.AnalyzeSession(context.Background(), writeSession(t, "puzzle: [A, B]\n"))
	if err == nil {
		t.Fatal("expected error for invalid session")
	}
	if !strings.Contains(err.Error(), "load session") {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestPipeline_CachedReportMatchesFresh(t *testing.T) {
	path := writeSession(t, testSession)

	cached := model.DefaultConfig()
	cached.Cache.Enabled = true
	pc := NewPipeline(cached)

	first, err := pc.AnalyzeSession(context.Background(), path)
	if err != nil {
		t.Fatalf("first analysis: %v", err)
	}
	second, err := pc.AnalyzeSession(context.Background(), path)
	if err != nil {
		t.Fatalf("second analysis: %v", err)
	}

	// Memoization must be invisible: same analysis either way.
	if !reflect.DeepEqual(first.Analysis, second.Analysis) {
		t.Errorf("cached analysis diverged:\n first  %+v\n second %+v", first.Analysis, second.Analysis)
	}

	fresh := model.DefaultConfig()
	fresh.Cache.Enabled = false
	pf := NewPipeline(fresh)
	uncached, err := pf.AnalyzeSession(context.Background(), path)
	if err != nil {
		t.Fatalf("uncached analysis: %v", err)
	}
	if !reflect.DeepEqual(first.Analysis, uncached.Analysis) {
		t.Errorf("cached analysis differs from scratch computation")
	}
}

func TestRenderer_JSONRoundTrip(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	report, err := p.AnalyzeSession(context.Background(), writeSession(t, testSession))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	jsonPath := filepath.Join(t.TempDir(), "report.json")
	if err := p.RenderReport(report, jsonPath, "", false); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !reflect.DeepEqual(decoded.Analysis.PossibleGroups, report.Analysis.PossibleGroups) {
		t.Error("JSON report lost possible groups")
	}
}

func TestRenderer_Markdown(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	report, err := p.AnalyzeSession(context.Background(), writeSession(t, testSession))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	md := NewRenderer(true).Markdown(report)

	for _, want := range []string{
		"# oneaway Report: daily-042",
		"## Puzzle",
		"## Guesses",
		"## Deductions",
		"## Possible Groups",
		"## Insights",
		"must_be_together",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	if md2 := NewRenderer(false).Markdown(report); strings.Contains(md2, "Generated by oneaway") {
		t.Error("footer must be omitted when disabled")
	}
}
