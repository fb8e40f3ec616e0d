package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quadline/oneaway/internal/cache"
	"github.com/quadline/oneaway/internal/engine"
	"github.com/quadline/oneaway/internal/llm"
	"github.com/quadline/oneaway/internal/model"
	"github.com/quadline/oneaway/internal/session"
	"github.com/quadline/oneaway/internal/worker"
)

// Pipeline orchestrates session loading, deduction, optional coach
// commentary, and rendering. The engine itself stays pure; everything
// stateful (caching, rate limiting, file IO) lives here.
type Pipeline struct {
	store    cache.Cache // nil when caching disabled
	coach    *llm.Coach  // Optional coach (nil if disabled)
	limiter  *worker.Limiter
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	var coach *llm.Coach
	if cfg.Coach.Provider != "" {
		c, err := llm.NewCoach(llm.ConfigFromModel(cfg.Coach))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize coach provider: %v\n", err)
		} else {
			coach = c
		}
	}

	return &Pipeline{
		store:    store,
		coach:    coach,
		limiter:  worker.NewLimiter(cfg.Concurrency.CoachRate, cfg.Concurrency.CoachRateBurst),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// AnalyzeSession loads a session file, runs the deduction engine over
// its guess history, and attaches coach commentary when enabled.
//
// Reports are memoized by puzzle and guess history. The engine is a
// pure function, so a cached report is byte-identical to recomputing;
// commentary is cached separately because it also depends on provider
// and model.
func (p *Pipeline) AnalyzeSession(ctx context.Context, path string) (*model.Report, error) {
	s, err := session.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	report, err := p.reportFor(s, path)
	if err != nil {
		return nil, err
	}

	if p.coach != nil && p.coach.IsEnabled() {
		if err := p.attachCommentary(ctx, s, report); err != nil {
			// Commentary is optional; never fail the analysis over it.
			fmt.Printf("Warning: coach commentary failed: %v\n", err)
		}
	}

	return report, nil
}

func (p *Pipeline) reportFor(s *session.Session, path string) (*model.Report, error) {
	key := cache.ReportKey(s.Puzzle, s.Guesses)

	if p.store != nil {
		if data, found := p.store.Get(key); found {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.SessionRef = path
				cached.Subject = model.SubjectFromPath(path)
				return &cached, nil
			}
			// Corrupt entry; fall through to recompute.
			_ = p.store.Delete(key)
		}
	}

	report := &model.Report{
		Subject:    model.SubjectFromPath(path),
		SessionRef: path,
		AnalyzedAt: time.Now().UTC(),
		Puzzle:     s.Puzzle,
		Guesses:    s.Guesses,
		Analysis:   engine.Analyze(s.Puzzle, s.Guesses),
	}

	if p.store != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := p.store.Set(key, data, 0); err != nil {
				fmt.Printf("Warning: cache write failed: %v\n", err)
			}
		}
	}

	return report, nil
}

func (p *Pipeline) attachCommentary(ctx context.Context, s *session.Session, report *model.Report) error {
	key := cache.CommentaryKey(s.Puzzle, s.Guesses, p.coach.ProviderName(), p.config.Coach.Model)

	if p.store != nil {
		if data, found := p.store.Get(key); found {
			var cached model.CoachSummary
			if err := json.Unmarshal(data, &cached); err == nil {
				report.Coach = &cached
				return nil
			}
			_ = p.store.Delete(key)
		}
	}

	if err := p.limiter.Wait(ctx, p.coach.ProviderName()); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	summary, err := p.coach.GenerateCommentary(ctx, *report)
	if err != nil {
		return err
	}
	if summary == nil {
		return nil
	}

	report.Coach = summary

	if p.store != nil && summary.CommentMD != "" {
		if data, err := json.Marshal(summary); err == nil {
			_ = p.store.Set(key, data, 0)
		}
	}

	return nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Coach commentary goes to a separate file, never mixed into the report.
	if report.Coach != nil && report.Coach.Enabled && mdPath != "" {
		coachPath := strings.TrimSuffix(mdPath, ".md") + ".coach.md"
		coachMD := llm.RenderSeparateMarkdown(report.Coach)
		if err := p.renderer.RenderCoachMarkdown(coachMD, coachPath); err != nil {
			fmt.Printf("Warning: Failed to write coach commentary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote Coach Commentary: %s\n", coachPath)
		}
	}

	return nil
}
