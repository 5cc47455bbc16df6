package validate

import (
	"fmt"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// ValidityThreshold is the fixed score at or above which a citation is
// considered valid. This is a policy constant, not user-tunable.
const ValidityThreshold = 0.7

// Bonus fractions for quality indicators beyond the required set
const (
	doiBonus          = 0.10
	urlBonus          = 0.05
	urlReachableBonus = 0.10
)

// RequiredComponents returns the required citation fields for a style.
// All styles require author, title and year; APA, MLA and Chicago also
// require a source, which is satisfied by either a journal or a URL.
// Unknown styles fall back to the common set.
func RequiredComponents(style string) []string {
	common := []string{"author", "title", "year"}
	switch strings.ToUpper(style) {
	case "APA", "MLA", "CHICAGO":
		return append(common, "source")
	default:
		return common
	}
}

// hasComponent reports whether a named required field is present.
// "source" is a proxy field satisfied by journal or URL.
func hasComponent(c model.Components, name string) bool {
	switch name {
	case "author":
		return c.Author != ""
	case "title":
		return c.Title != ""
	case "year":
		return c.Year != ""
	case "journal":
		return c.Journal != ""
	case "url":
		return c.URL != ""
	case "doi":
		return c.DOI != ""
	case "source":
		return c.Journal != "" || c.URL != ""
	default:
		return false
	}
}

// ScoreComponents scores a citation's completeness against the required
// set, appending per-field strengths and issues to the citation. Each
// present required field contributes 1/len(required); DOI and URL add
// fixed bonuses. The returned score is not yet capped: the URL
// reachability bonus may still be added before capping.
func ScoreComponents(cit *model.Citation, required []string) float64 {
	score := 0.0

	for _, name := range required {
		if hasComponent(cit.Components, name) {
			score += 1.0 / float64(len(required))
			cit.Strengths = append(cit.Strengths, "Has "+name)
		} else {
			cit.Issues = append(cit.Issues, "Missing "+name)
		}
	}

	if cit.Components.DOI != "" {
		score += doiBonus
		cit.Strengths = append(cit.Strengths, "Includes DOI")
	}
	if cit.Components.URL != "" {
		score += urlBonus
		cit.Strengths = append(cit.Strengths, "Includes URL")
	}

	return score
}

// ApplyURLCheck folds a URL reachability result into the citation score.
// A reachable URL earns a bonus and a strength entry; an unreachable one
// records an issue and leaves the score untouched.
func ApplyURLCheck(cit *model.Citation, check *model.URLCheck, score float64) float64 {
	cit.URLCheck = check
	if check.Reachable {
		cit.Strengths = append(cit.Strengths, "URL is accessible")
		return score + urlReachableBonus
	}
	cit.Issues = append(cit.Issues, fmt.Sprintf("URL not accessible: %s", check.Error))
	return score
}

// Finalize caps the score, sets validity against the fixed threshold
// and returns the citation ready for the report.
func Finalize(cit *model.Citation, score float64) {
	if score > 1.0 {
		score = 1.0
	}
	cit.QualityScore = score
	cit.IsValid = score >= ValidityThreshold
}

// OverallQuality returns the mean quality score across citations,
// 0.0 for an empty batch.
func OverallQuality(citations []model.Citation) float64 {
	if len(citations) == 0 {
		return 0.0
	}
	total := 0.0
	for _, c := range citations {
		total += c.QualityScore
	}
	return total / float64(len(citations))
}

// Summarize builds the aggregate summary for a batch of citations
func Summarize(citations []model.Citation) model.CitationSummary {
	valid := 0
	for _, c := range citations {
		if c.IsValid {
			valid++
		}
	}

	rate := 0.0
	if len(citations) > 0 {
		rate = float64(valid) / float64(len(citations))
	}

	return model.CitationSummary{
		Total:            len(citations),
		Valid:            valid,
		ValidationRate:   rate,
		OverallQuality:   OverallQuality(citations),
		NeedsImprovement: valid < len(citations),
	}
}
