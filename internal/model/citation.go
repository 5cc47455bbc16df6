package model

// Components holds the structured fields extracted from a free-text citation.
// Every field is optional; an empty string means the field was not found.
type Components struct {
	Author  string `json:"author,omitempty"`
	Title   string `json:"title,omitempty"`
	Year    string `json:"year,omitempty"`
	Journal string `json:"journal,omitempty"`
	URL     string `json:"url,omitempty"`
	DOI     string `json:"doi,omitempty"`
}

// URLCheck is the outcome of a reachability check for one URL
type URLCheck struct {
	URL          string  `json:"url"`
	Reachable    bool    `json:"reachable"`           // true iff status code is 200 and no error
	StatusCode   int     `json:"status_code,omitempty"`
	ResponseTime float64 `json:"response_time,omitempty"` // seconds
	Error        string  `json:"error,omitempty"`
	Domain       string  `json:"domain,omitempty"`
	IsSecure     bool    `json:"is_secure"`
}

// Citation is one parsed and scored citation.
// Built once by the validator and never mutated afterwards.
type Citation struct {
	Number       int         `json:"citation_number"`
	Raw          string      `json:"original_citation"`
	Components   Components  `json:"components"`
	QualityScore float64     `json:"quality_score"` // 0.0 to 1.0
	IsValid      bool        `json:"is_valid"`      // quality_score >= ValidityThreshold
	Issues       []string    `json:"issues,omitempty"`
	Strengths    []string    `json:"strengths,omitempty"`
	Formatted    string      `json:"formatted_citation,omitempty"`
	URLCheck     *URLCheck   `json:"url_check,omitempty"`
	PageMeta     *PageMeta   `json:"page_meta,omitempty"`
}

// PageMeta holds metadata scraped from a citation's landing page,
// used only as enrichment hints, never as a scoring input.
type PageMeta struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Published   string `json:"published,omitempty"`
}

// CitationSummary aggregates a batch of validated citations
type CitationSummary struct {
	Total            int     `json:"total_citations"`
	Valid            int     `json:"valid_citations"`
	ValidationRate   float64 `json:"validation_rate"`       // valid/total, 0 for empty batch
	OverallQuality   float64 `json:"overall_quality_score"` // mean quality, 0 for empty batch
	NeedsImprovement bool    `json:"needs_improvement"`
}
