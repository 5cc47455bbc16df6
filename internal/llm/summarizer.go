package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Summarizer wraps a provider and produces the optional LLMSummary
// attached to citation reports. The summary never affects scores.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. Returns an
// error when the named provider cannot be constructed; a nil provider
// (no provider configured) yields a disabled summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary summarizes a citation report in strict evidence mode.
// The URL allowlist is built from the report's own citations.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.CitationReport) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	var allowed []string
	for _, c := range report.Citations {
		if c.Components.URL != "" {
			allowed = append(allowed, c.Components.URL)
		}
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:      report,
		AllowedURLs: allowed,
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:        true,
		Provider:       s.provider.Name(),
		Model:          resp.Model,
		StrictEvidence: s.config.StrictEvidence,
		SummaryMD:      resp.Summary,
	}

	// Flag cited URLs that are not resolvable against the allowlist;
	// with strict evidence enabled the provider already rejected leaks,
	// so this only fires in permissive mode.
	if !s.config.StrictEvidence {
		allowedSet := make(map[string]bool, len(allowed))
		for _, u := range allowed {
			allowedSet[u] = true
		}
		for _, u := range resp.CitedURLs {
			if !allowedSet[u] {
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("cited URL outside report: %s", u))
			}
		}
	}

	return summary, nil
}

// RenderSeparateMarkdown renders the LLM summary as a standalone
// Markdown document, clearly labeled as model-generated.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	var b strings.Builder

	b.WriteString("# Model-Generated Summary\n\n")
	b.WriteString(fmt.Sprintf("> Generated by %s (%s). ", summary.Provider, summary.Model))
	b.WriteString("This summary is advisory only and has no effect on citation scores.\n\n")
	b.WriteString(summary.SummaryMD)
	b.WriteString("\n")

	if len(summary.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range summary.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
