package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Renderer writes reports as JSON or Markdown files and prints short
// summaries to stdout
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes any report as pretty-printed JSON
func (r *Renderer) RenderJSON(report interface{}, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderCitationMarkdown writes a citation report as Markdown
func (r *Renderer) RenderCitationMarkdown(report *model.CitationReport, path string) error {
	var b strings.Builder

	b.WriteString("# Citation Validation Report\n\n")
	fmt.Fprintf(&b, "- **Style:** %s\n", report.Style)
	fmt.Fprintf(&b, "- **Citations:** %d total, %d valid (%.0f%%)\n",
		report.Summary.Total, report.Summary.Valid, report.Summary.ValidationRate*100)
	fmt.Fprintf(&b, "- **Overall quality:** %.2f\n", report.Summary.OverallQuality)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	for _, c := range report.Citations {
		fmt.Fprintf(&b, "## Citation %d — %.2f %s\n\n", c.Number, c.QualityScore, validityMark(c.IsValid))
		fmt.Fprintf(&b, "> %s\n\n", c.Raw)
		if c.Formatted != "" {
			fmt.Fprintf(&b, "**Formatted (%s):** %s\n\n", report.Style, c.Formatted)
		}
		if len(c.Strengths) > 0 {
			fmt.Fprintf(&b, "**Strengths:** %s\n\n", strings.Join(c.Strengths, "; "))
		}
		if len(c.Issues) > 0 {
			fmt.Fprintf(&b, "**Issues:** %s\n\n", strings.Join(c.Issues, "; "))
		}
		if c.URLCheck != nil {
			if c.URLCheck.Reachable {
				fmt.Fprintf(&b, "**URL check:** reachable (HTTP %d, %.2fs)\n\n", c.URLCheck.StatusCode, c.URLCheck.ResponseTime)
			} else {
				fmt.Fprintf(&b, "**URL check:** unreachable (%s)\n\n", c.URLCheck.Error)
			}
		}
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by scrutiny — citation completeness diagnostics, not truth judgments.\n")
	}

	return writeFile(path, b.String())
}

// RenderFactCheckMarkdown writes a fact-check report as Markdown
func (r *Renderer) RenderFactCheckMarkdown(report *model.FactCheckReport, path string) error {
	var b strings.Builder

	b.WriteString("# Fact Check Report\n\n")
	fmt.Fprintf(&b, "- **Claims:** %d\n", report.TotalClaims)
	fmt.Fprintf(&b, "- **Overall reliability:** %.2f\n", report.OverallReliability)
	fmt.Fprintf(&b, "- **Methodology:** %s\n\n", report.Methodology)

	for _, v := range report.Verifications {
		fmt.Fprintf(&b, "## Claim %d — %s (%.1f)\n\n", v.Number, v.Status, v.Confidence)
		fmt.Fprintf(&b, "> %s\n\n", v.Claim)
		fmt.Fprintf(&b, "Keyword overlap: %.2f. %s\n\n", v.Overlap, v.Analysis)
	}

	if r.includeFooter {
		b.WriteString("---\n\nLexical-overlap verification is a support proxy, not a truth test.\n")
	}

	return writeFile(path, b.String())
}

// RenderLLMMarkdown writes an LLM summary to its own file
func (r *Renderer) RenderLLMMarkdown(markdown, path string) error {
	return writeFile(path, markdown)
}

// PrintCitationSummary prints the short report summary to stdout
func (r *Renderer) PrintCitationSummary(report *model.CitationReport) {
	fmt.Printf("\nCitations: %d total, %d valid (%.0f%%)\n",
		report.Summary.Total, report.Summary.Valid, report.Summary.ValidationRate*100)
	fmt.Printf("Overall quality: %.2f\n", report.Summary.OverallQuality)
	for _, c := range report.Citations {
		fmt.Printf("  [%d] %.2f %s  %s\n", c.Number, c.QualityScore, validityMark(c.IsValid), truncate(c.Raw, 70))
	}
	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

// PrintFactCheckSummary prints the short fact-check summary to stdout
func (r *Renderer) PrintFactCheckSummary(report *model.FactCheckReport) {
	fmt.Printf("\nClaims checked: %d, overall reliability: %.2f\n", report.TotalClaims, report.OverallReliability)
	for _, v := range report.Verifications {
		fmt.Printf("  [%d] %-22s %.1f  %s\n", v.Number, v.Status, v.Confidence, truncate(v.Claim, 60))
	}
}

// PrintSearchSummary prints the ranked results to stdout
func (r *Renderer) PrintSearchSummary(report *model.SearchReport) {
	fmt.Printf("\nQuery: %q — %d results, avg relevance %.2f\n", report.Query, len(report.Results), report.AvgRelevance)
	for i, res := range report.Results {
		fmt.Printf("  %d. [%.2f] (%s) %s\n     %s\n", i+1, res.Combined(), res.SourceType, res.Title, res.URL)
	}
}

func validityMark(valid bool) string {
	if valid {
		return "✓"
	}
	return "✗"
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
