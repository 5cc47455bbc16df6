package score

import (
	"sort"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Weighting for query-term matches: title hits count much more than
// snippet hits.
const (
	titleWeight   = 0.7
	snippetWeight = 0.3
)

// emptyQueryRelevance is the defined fallback for a query with no terms
const emptyQueryRelevance = 0.5

// Relevance scores how well a search hit matches the query's terms,
// in [0,1]. Query terms form a set: repeating a word in the query
// neither boosts nor dilutes the score.
func Relevance(query string, hit model.SearchHit) float64 {
	seen := make(map[string]struct{})
	var terms []string
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return emptyQueryRelevance
	}

	title := strings.ToLower(hit.Title)
	snippet := strings.ToLower(hit.Snippet)

	titleMatches, snippetMatches := 0, 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			titleMatches++
		}
		if strings.Contains(snippet, term) {
			snippetMatches++
		}
	}

	relevance := (float64(titleMatches)*titleWeight + float64(snippetMatches)*snippetWeight) / float64(len(terms))
	if relevance > 1.0 {
		relevance = 1.0
	}
	return relevance
}

// ContentQuality is a heuristic estimate of a hit's trustworthiness and
// completeness. The two domain bonuses are mutually exclusive; the
// .edu/.gov/.org check takes precedence.
func ContentQuality(hit model.SearchHit) float64 {
	quality := 0.5

	if len(hit.Snippet) > 100 {
		quality += 0.2
	}
	if len(hit.Title) > 20 {
		quality += 0.1
	}

	if containsAny(hit.URL, ".edu", ".gov", ".org") {
		quality += 0.3
	} else if containsAny(hit.URL, "wikipedia", "arxiv", "scholar") {
		quality += 0.2
	}

	if quality > 1.0 {
		quality = 1.0
	}
	return quality
}

// ClassifySource identifies the source type from a URL.
// First matching rule wins, in this priority order.
func ClassifySource(url string) model.SourceType {
	switch {
	case strings.Contains(url, ".edu"):
		return model.SourceAcademic
	case strings.Contains(url, ".gov"):
		return model.SourceGovernment
	case strings.Contains(url, ".org"):
		return model.SourceOrganization
	case strings.Contains(url, "wikipedia"):
		return model.SourceEncyclopedia
	case strings.Contains(url, "arxiv"):
		return model.SourcePreprint
	case containsAny(url, "bbc", "cnn", "reuters", "ap", "news"):
		return model.SourceNews
	default:
		return model.SourceGeneral
	}
}

// ScoreHits scores each raw hit with relevance, quality and source type
func ScoreHits(query string, hits []model.SearchHit) []model.ScoredResult {
	results := make([]model.ScoredResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, model.ScoredResult{
			SearchHit:  hit,
			Relevance:  Relevance(query, hit),
			Quality:    ContentQuality(hit),
			SourceType: ClassifySource(hit.URL),
		})
	}
	return results
}

// Rank sorts results descending by combined score. The sort is stable:
// ties keep their original input order.
func Rank(results []model.ScoredResult) []model.ScoredResult {
	ranked := make([]model.ScoredResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Combined() > ranked[j].Combined()
	})
	return ranked
}

// AvgRelevance returns the mean relevance across results, 0.0 if empty
func AvgRelevance(results []model.ScoredResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	total := 0.0
	for _, r := range results {
		total += r.Relevance
	}
	return total / float64(len(results))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
