package cli

import (
	"fmt"
	"os"

	"github.com/avezina/scrutiny/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	factJSON string
	factMD   string
)

// factcheckCmd represents the factcheck command
var factcheckCmd = &cobra.Command{
	Use:   "factcheck <claims-file> <sources-file>",
	Short: "Verify claims against source text by keyword overlap",
	Long: `Factcheck splits the claims file into individual claims and scores
each one by its keyword overlap with the combined source text:

  overlap >= 0.7   strongly supported   (confidence 0.9)
  overlap >= 0.4   partially supported  (confidence 0.6)
  otherwise        insufficient evidence (confidence 0.3)

This is a lexical support check, not a truth judgment. Pass "-" for
either file to read it from stdin (only one may be stdin).

Example:
  scrutiny factcheck claims.txt sources.txt
  scrutiny factcheck claims.txt sources.txt --json report.json`,
	Args: cobra.ExactArgs(2),
	RunE: runFactCheck,
}

func init() {
	rootCmd.AddCommand(factcheckCmd)

	factcheckCmd.Flags().StringVar(&factJSON, "json", "", "output JSON path (optional)")
	factcheckCmd.Flags().StringVar(&factMD, "md", "", "output Markdown path (optional)")
	factcheckCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runFactCheck(cmd *cobra.Command, args []string) error {
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("only one of claims and sources may come from stdin")
	}

	claims, err := readInput(args[0])
	if err != nil {
		return err
	}
	sources, err := readInput(args[1])
	if err != nil {
		return err
	}

	cfg := buildConfig()
	session := pipeline.NewSession()
	p := pipeline.NewPipeline(cfg, session)

	report := p.CheckClaims(claims, sources)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", report.TotalClaims)
		fmt.Fprintf(os.Stderr, "✓ Overall reliability: %.2f\n\n", report.OverallReliability)
	}

	r := p.Renderer()
	if factJSON != "" {
		if err := r.RenderJSON(report, factJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", factJSON)
	}
	if factMD != "" {
		if err := r.RenderFactCheckMarkdown(report, factMD); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", factMD)
	}

	r.PrintFactCheckSummary(report)
	return nil
}
