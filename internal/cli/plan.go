package cli

import (
	"fmt"
	"os"

	"github.com/avezina/scrutiny/internal/pipeline"
	"github.com/avezina/scrutiny/internal/summarize"
	"github.com/spf13/cobra"
)

var (
	planType string
	planJSON string
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <file>",
	Short: "Compute summary length targets for a document",
	Long: `Plan measures a document and computes deterministic summary targets:
word and character counts, a target summary length for the requested
summary type, the compression ratio, and an estimated reading time.

Summary types: brief, comprehensive, bullet_points, abstract.
Pass "-" to read the document from stdin.

Example:
  scrutiny plan paper.txt
  scrutiny plan paper.txt --type abstract --json plan.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planType, "type", summarize.TypeComprehensive, "summary type (brief, comprehensive, bullet_points, abstract)")
	planCmd.Flags().StringVar(&planJSON, "json", "", "output JSON path (optional)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	content, err := readInput(args[0])
	if err != nil {
		return err
	}

	plan := summarize.Plan(content, planType)

	if planJSON != "" {
		r := pipeline.NewRenderer(false)
		if err := r.RenderJSON(plan, planJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ JSON plan: %s\n", planJSON)
	}

	fmt.Printf("\nSummary plan (%s):\n", plan.SummaryType)
	fmt.Printf("  Words:           %d\n", plan.WordCount)
	fmt.Printf("  Characters:      %d\n", plan.CharCount)
	fmt.Printf("  Target length:   %d words\n", plan.TargetLength)
	fmt.Printf("  Compression:     %.2f\n", plan.CompressionRatio)
	fmt.Printf("  Reading time:    %s\n", plan.ReadingTime)
	fmt.Printf("  Instructions:    %s\n", plan.Instructions)
	return nil
}
