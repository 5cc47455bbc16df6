package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avezina/scrutiny/internal/model"
	"github.com/avezina/scrutiny/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	citeStyle   string
	checkURLs   bool
	checkDOIs   bool
	enrichMeta  bool
	outJSON     string
	outMD       string
	httpTimeout time.Duration
	userAgent   string
	noCache     bool
	noFooter    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// citeCmd represents the cite command
var citeCmd = &cobra.Command{
	Use:   "cite <file>",
	Short: "Parse and validate citations from a text file",
	Long: `Cite parses free-text citations and validates each one:
- Extract author, title, year, journal, URL, and DOI
- Score completeness against the requested citation style
- Optionally check cited URLs for reachability
- Render a formatted version of each citation

Pass "-" to read citations from stdin.

Example:
  scrutiny cite refs.txt
  scrutiny cite refs.txt --style mla --check-urls
  scrutiny cite refs.txt --json report.json --md report.md
  scrutiny cite refs.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func init() {
	rootCmd.AddCommand(citeCmd)

	citeCmd.Flags().StringVar(&citeStyle, "style", "apa", "citation style (apa, mla, chicago)")
	citeCmd.Flags().BoolVar(&checkURLs, "check-urls", false, "check cited URLs for reachability")
	citeCmd.Flags().BoolVar(&checkDOIs, "check-dois", false, "resolve DOIs through doi.org")
	citeCmd.Flags().BoolVar(&enrichMeta, "enrich", false, "fetch page metadata for reachable URLs (implies --check-urls)")

	// Output flags
	citeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	citeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	citeCmd.Flags().DurationVar(&httpTimeout, "timeout", 10*time.Second, "per-request timeout for URL checks")
	citeCmd.Flags().StringVar(&userAgent, "ua", "Scrutiny/0.1 (+https://github.com/avezina/scrutiny)", "HTTP User-Agent")
	citeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh URL checks)")
	citeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	citeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	citeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	citeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	citeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	citeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	citeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runCite(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := buildConfig()
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	session := pipeline.NewSession()
	p := pipeline.NewPipeline(cfg, session)

	if verbose {
		fmt.Fprintf(os.Stderr, "Style: %s\n", citeStyle)
		fmt.Fprintf(os.Stderr, "URL checks: %v\n", checkURLs || enrichMeta)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	report, err := p.ValidateCitations(ctx, text, citeStyle, pipeline.Options{
		CheckURLs:  checkURLs || enrichMeta,
		CheckDOIs:  checkDOIs,
		EnrichMeta: enrichMeta,
		Summarize:  llmEnabled,
	})
	if err != nil {
		return fmt.Errorf("validate citations: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Parsed %d citations\n", report.Summary.Total)
		fmt.Fprintf(os.Stderr, "✓ %d valid (threshold %.1f)\n", report.Summary.Valid, 0.7)
		for stage, d := range session.Timings() {
			fmt.Fprintf(os.Stderr, "  %-12s %v\n", stage, d.Round(time.Millisecond))
		}
		fmt.Fprintln(os.Stderr)
	}

	r := p.Renderer()
	if outJSON != "" {
		if err := r.RenderJSON(report, outJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", outJSON)
	}
	if outMD != "" {
		if err := r.RenderCitationMarkdown(report, outMD); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", outMD)
	}
	if report.LLM != nil && report.LLM.Enabled && outMD != "" {
		llmPath := outMD + ".llm.md"
		if err := r.RenderLLMMarkdown(report.LLM.SummaryMD, llmPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ LLM summary: %s\n", llmPath)
	}

	r.PrintCitationSummary(report)
	return nil
}

// readInput reads a file, or stdin when path is "-"
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// buildConfig merges shared CLI flags into the default configuration
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = httpTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}

// configureLLM fills in the LLM provider config from flags and environment
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.StrictEvidence = true // Always enforce

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
