package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avezina/scrutiny/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	searchMax     int
	searchRegion  string
	searchJSON    string
	searchTimeout time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web and rank results by relevance and source quality",
	Long: `Search queries the configured provider, then scores each result:
- Relevance: weighted term matches in title (0.7) and snippet (0.3)
- Quality: content length plus domain reputation (.edu, .gov, .org,
  wikipedia, arxiv, scholar)
- Results are ranked by the average of the two scores

Requires SERPER_API_KEY (or search.api_key in the config file).

Example:
  scrutiny search "transformer architecture"
  scrutiny search "climate feedback loops" --max 10 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchMax, "max", 5, "maximum number of results")
	searchCmd.Flags().StringVar(&searchRegion, "region", "us-en", "search region")
	searchCmd.Flags().StringVar(&searchJSON, "json", "", "output JSON path (optional)")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 30*time.Second, "search request timeout")
	searchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh search)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Search.Region = searchRegion
	cfg.Search.MaxResults = searchMax
	if key := os.Getenv("SERPER_API_KEY"); key != "" {
		cfg.Search.APIKey = key
	}
	if cfg.Search.APIKey == "" {
		return fmt.Errorf("SERPER_API_KEY environment variable not set")
	}

	session := pipeline.NewSession()
	p := pipeline.NewPipeline(cfg, session)

	if verbose {
		fmt.Fprintf(os.Stderr, "Query: %q\n", query)
		fmt.Fprintf(os.Stderr, "Provider: %s\n\n", cfg.Search.Provider)
	}

	report, err := p.SearchAndRank(ctx, query, searchMax)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	r := p.Renderer()
	if searchJSON != "" {
		if err := r.RenderJSON(report, searchJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", searchJSON)
	}

	r.PrintSearchSummary(report)
	return nil
}
