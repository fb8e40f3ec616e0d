package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quadline/oneaway/internal/model"
	"github.com/quadline/oneaway/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	outMD         string
	timeout       time.Duration
	noCache       bool
	cacheDir      string
	noFooter      bool
	coachEnabled  bool
	coachProvider string
	coachModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <session.yaml>",
	Short: "Analyze a session's one-away guesses and generate a deduction report",
	Long: `Analyze folds a session's one-away guesses into deductions:
- Enumerate each guess's 4 candidate triplets
- Merge compatible triplets into surviving group hypotheses
- Derive certain togetherness and remaining possibilities
- Generate transparent, explainable reports

Example:
  oneaway analyze session.yaml
  oneaway analyze session.yaml --json report.json --md report.md
  oneaway analyze session.yaml --coach --coach-provider openai --coach-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Cache flags
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force recompute)")
	analyzeCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: memory only)")

	// Timeout only matters when the coach makes API calls
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall analysis timeout")

	// Coach flags
	analyzeCmd.Flags().BoolVar(&coachEnabled, "coach", false, "enable LLM coach commentary")
	analyzeCmd.Flags().StringVar(&coachProvider, "coach-provider", "openai", "coach provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&coachModel, "coach-model", "gpt-4o-mini", "coach model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if coachEnabled {
		if err := configureCoach(cfg); err != nil {
			return err
		}
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	result, err := p.AnalyzeSession(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Logged %d guesses\n", len(result.Guesses))
		fmt.Fprintf(os.Stderr, "✓ Derived %d deductions\n", len(result.Analysis.Deductions))
		fmt.Fprintf(os.Stderr, "✓ %d possible groups remain\n", len(result.Analysis.PossibleGroups))
		if result.Coach != nil && result.Coach.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated coach commentary using %s/%s\n", result.Coach.Provider, result.Coach.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Insights go straight to the terminal; files are optional.
	for _, insight := range result.Analysis.Insights {
		fmt.Println(insight)
	}

	if err := p.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// configureCoach fills in coach settings from flags and environment
func configureCoach(cfg *model.Config) error {
	cfg.Coach.Provider = coachProvider
	cfg.Coach.Model = coachModel
	cfg.Coach.StrictWords = true // Always enforce

	// Get API key from environment
	switch coachProvider {
	case "openai":
		cfg.Coach.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Coach.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Coach.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Coach.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Coach.BaseURL = baseURL
		}
	}

	return nil
}
