package model

// SourceType classifies a search hit by its URL
type SourceType string

const (
	SourceAcademic     SourceType = "academic"
	SourceGovernment   SourceType = "government"
	SourceOrganization SourceType = "organization"
	SourceEncyclopedia SourceType = "encyclopedia"
	SourcePreprint     SourceType = "preprint"
	SourceNews         SourceType = "news"
	SourceGeneral      SourceType = "general"
)

// SearchHit is one raw result from a search provider
type SearchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// ScoredResult is a search hit with relevance/quality scores attached
type ScoredResult struct {
	SearchHit
	Relevance  float64    `json:"relevance_score"`
	Quality    float64    `json:"content_quality"`
	SourceType SourceType `json:"source_type"`
}

// Combined returns the ranking key for a scored result
func (r ScoredResult) Combined() float64 {
	return (r.Relevance + r.Quality) / 2
}
