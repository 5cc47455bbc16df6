package validate

import (
	"fmt"
	"strings"
)

// Recommendations derives improvement suggestions from the issues found
// across a batch and its overall quality score. The style reminder is
// always appended last.
func Recommendations(issues []string, overallQuality float64, style string) []string {
	var recs []string

	var missingAuthors, missingYears, missingTitles, urlIssues bool
	for _, issue := range issues {
		switch {
		case strings.Contains(issue, "Missing author"):
			missingAuthors = true
		case strings.Contains(issue, "Missing year"):
			missingYears = true
		case strings.Contains(issue, "Missing title"):
			missingTitles = true
		case strings.Contains(issue, "URL not accessible"):
			urlIssues = true
		}
	}

	if missingAuthors {
		recs = append(recs, "Add author information for incomplete citations")
	}
	if missingYears {
		recs = append(recs, "Include publication years for all sources")
	}
	if missingTitles {
		recs = append(recs, "Provide complete titles for all cited works")
	}
	if urlIssues {
		recs = append(recs, "Verify all URLs are accessible and current")
	}

	if overallQuality < 0.7 {
		recs = append(recs, "Review citations for completeness and accuracy")
	}
	if overallQuality < 0.5 {
		recs = append(recs, "Consider using more authoritative sources")
	}

	recs = append(recs, fmt.Sprintf("Ensure all citations follow %s formatting guidelines", style))

	return recs
}
