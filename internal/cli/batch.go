package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/quadline/oneaway/internal/model"
	"github.com/quadline/oneaway/internal/pipeline"
	"github.com/quadline/oneaway/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noCache, noFooter and the coach flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple session files in parallel",
	Long: `Batch processes multiple sessions concurrently:
- Read session files from a directory (.yaml/.yml) or a list file (one path per line)
- Analyze sessions in parallel with configurable worker count
- Generate individual JSON and Markdown reports for each session

Example:
  oneaway batch ./sessions
  oneaway batch sessions.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./oneaway-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared flags
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force recompute)")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: memory only)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Coach flags
	batchCmd.Flags().BoolVar(&coachEnabled, "coach", false, "enable LLM coach commentary")
	batchCmd.Flags().StringVar(&coachProvider, "coach-provider", "openai", "coach provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&coachModel, "coach-model", "gpt-4o-mini", "coach model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  oneaway Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if coachEnabled {
		if err := configureCoach(cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  Coach:        %s/%s\n\n", coachProvider, coachModel)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// A single pipeline is shared across workers; it is safe for
	// concurrent use and lets the sessions share one cache.
	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessInput(ctx, input)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	succeeded, failed := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		stem := filepath.Join(outputDir, result.Report.Subject)
		if err := p.RenderReport(result.Report, stem+".json", stem+".md", verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: render: %v\n", result.Path, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "✓ %s (%d possible groups)\n", result.Path, len(result.Report.Analysis.PossibleGroups))
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", succeeded, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d sessions failed", failed, len(results))
	}
	return nil
}
