package llm

import (
	"context"
	"fmt"

	"github.com/avezina/scrutiny/internal/model"
)

// Provider is the interface for optional report summarization backends.
// A summary is a rendering add-on: it never feeds back into scoring.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of a citation report in strict
	// evidence mode
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for report summarization
type SummarizeRequest struct {
	// Report is the citation validation report to summarize
	Report model.CitationReport

	// AllowedURLs is the strict allowlist of URLs the model may cite:
	// the URLs of the report's own citations. Anything else in the
	// output is a citation leak.
	AllowedURLs []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the provider-specific model name
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the provider's output
type SummarizeResponse struct {
	Summary    string
	CitedURLs  []string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider       string // "openai", "anthropic", "ollama", ""
	Model          string
	APIKey         string
	BaseURL        string
	Timeout        int // seconds
	StrictEvidence bool
	MaxTokens      int
	HTTPProxy      string
	HTTPSProxy     string
	NoProxy        string
}

// DefaultConfig returns provider defaults; summarization is disabled
// until a provider is named
func DefaultConfig() Config {
	return Config{
		Timeout:        30,
		StrictEvidence: true,
		MaxTokens:      1000,
	}
}

const systemPrompt = "You are a careful assistant that summarizes citation review reports and never cites sources outside the allowed list."

// BuildPrompt constructs the default summarization prompt. The model is
// told to describe citation completeness and accessibility, never to
// assert the truth of cited works.
func BuildPrompt(report model.CitationReport, allowedURLs []string) string {
	prompt := fmt.Sprintf(`You are summarizing a citation validation report. The report measures citation completeness and accessibility - it never judges the cited works themselves.

CRITICAL RULES:
1. You MUST ONLY cite URLs from this allowed list:
%s

2. DO NOT infer, speculate, or cite external sources beyond this list.
3. Describe completeness and accessibility, not correctness. Use phrases like:
   - "X of Y citations are complete..."
   - "The batch is missing author fields in..."
   - "Linked sources were reachable for..."

Report Summary:
- Citation style: %s
- Citations: %d total, %d valid (%.0f%% validation rate)
- Overall quality score: %.2f

Top issues:
`, joinURLs(allowedURLs), report.Style, report.Summary.Total, report.Summary.Valid,
		report.Summary.ValidationRate*100, report.Summary.OverallQuality)

	for i, issue := range report.IssuesFound {
		if i >= 5 {
			break
		}
		prompt += fmt.Sprintf("- %s\n", issue)
	}

	prompt += "\nProvide a 3-4 sentence summary focusing on citation quality and what to fix first."
	return prompt
}

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return "(No citation URLs available)"
	}
	result := ""
	for i, url := range urls {
		if i >= 20 { // cap the prompt size
			result += fmt.Sprintf("\n... and %d more URLs", len(urls)-20)
			break
		}
		result += fmt.Sprintf("\n- %s", url)
	}
	return result
}
