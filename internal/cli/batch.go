package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/avezina/scrutiny/internal/pipeline"
	"github.com/avezina/scrutiny/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchStyle   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Validate citations from multiple files in parallel",
	Long: `Batch validates citation files concurrently:
- Read input paths from a list file (one per line, # comments allowed)
- Validate each file with a configurable worker count
- Check cited URLs for every file
- Write an individual JSON report per input file

Example:
  scrutiny batch files.txt
  scrutiny batch files.txt --concurrency 8 --output-dir ./reports
  scrutiny batch files.txt --style chicago --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./scrutiny-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchStyle, "style", "apa", "citation style for all files")

	batchCmd.Flags().DurationVar(&httpTimeout, "check-timeout", 10*time.Second, "per-request timeout for URL checks")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Scrutiny/0.1 (+https://github.com/avezina/scrutiny)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh URL checks)")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Scrutiny Batch Validation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Style:        %s\n", batchStyle)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := buildConfig()
	cfg.Style = batchStyle
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	session := pipeline.NewSession()
	p := pipeline.NewPipeline(cfg, session)

	paths, err := worker.ReadFileList(file)
	if err != nil {
		return fmt.Errorf("read file list: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d input files\n\n", len(paths))

	fmt.Fprintf(os.Stderr, "⚙️  Validating with %d workers...\n", concurrency)
	start := time.Now()

	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.ProcessFiles(ctx, paths)

	var succeeded, failed int
	r := p.Renderer()
	for _, res := range results {
		if err := res.GetError(); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		succeeded++

		out := filepath.Join(outputDir, reportName(res.Path))
		if err := r.RenderJSON(res.Report, out); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%d/%d valid)\n",
			res.Path, out, res.Report.Summary.Valid, res.Report.Summary.Total)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Completed: %d succeeded, %d failed in %v\n", succeeded, failed, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// reportName maps an input path to its per-file report filename
func reportName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".report.json"
}
