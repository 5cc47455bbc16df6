package model

import "time"

// CitationReport is the complete output of a citation validation run
type CitationReport struct {
	GeneratedAt time.Time `json:"timestamp"`
	Style       string    `json:"citation_style"`
	Input       string    `json:"input_citations,omitempty"`

	Citations       []Citation      `json:"validated_citations"`
	Summary         CitationSummary `json:"validation_summary"`
	IssuesFound     []string        `json:"issues_found,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional, never affects scores
}

// FactCheckReport is the complete output of a fact-checking run
type FactCheckReport struct {
	GeneratedAt        time.Time      `json:"timestamp"`
	TotalClaims        int            `json:"total_claims"`
	Verifications      []Verification `json:"verification_results"`
	OverallReliability float64        `json:"overall_reliability"` // mean confidence, 0 for empty batch
	Methodology        string         `json:"methodology"`
}

// SearchReport is the complete output of a search-and-rank run
type SearchReport struct {
	GeneratedAt  time.Time      `json:"timestamp"`
	Query        string         `json:"query"`
	Region       string         `json:"region,omitempty"`
	Results      []ScoredResult `json:"results"`
	AvgRelevance float64        `json:"avg_relevance"`
}

// SummaryPlan is the deterministic output of the content summary planner:
// length targets and metadata for a requested summary type.
type SummaryPlan struct {
	GeneratedAt      time.Time `json:"timestamp"`
	SummaryType      string    `json:"summary_type"`
	WordCount        int       `json:"word_count"`
	CharCount        int       `json:"character_count"`
	TargetLength     int       `json:"target_length"`
	CompressionRatio float64   `json:"compression_ratio"`
	ReadingTime      string    `json:"estimated_reading_time"`
	Instructions     string    `json:"instructions_used"`
}

// LLMSummary contains an optional LLM-generated summary of a report.
// It never affects scoring and is rendered separately.
type LLMSummary struct {
	Enabled        bool     `json:"enabled"`
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	StrictEvidence bool     `json:"strict_evidence"`
	SummaryMD      string   `json:"summary_md,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}
