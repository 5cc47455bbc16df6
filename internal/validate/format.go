package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/avezina/scrutiny/internal/model"
)

// nowFunc is injectable for tests; MLA and Chicago access dates use it
var nowFunc = time.Now

// FormatCitation renders the extracted components in the requested
// academic style. Missing fields are simply omitted from the join; an
// unrecognized style falls back to APA.
func FormatCitation(c model.Components, style string) string {
	switch strings.ToUpper(style) {
	case "MLA":
		return formatMLA(c)
	case "CHICAGO":
		return formatChicago(c)
	default:
		return formatAPA(c)
	}
}

// formatAPA: Author. (Year). Title. *Journal*. Retrieved from URL.
func formatAPA(c model.Components) string {
	var parts []string

	if c.Author != "" {
		parts = append(parts, c.Author)
	}
	if c.Year != "" {
		parts = append(parts, fmt.Sprintf("(%s)", c.Year))
	}
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	if c.Journal != "" {
		parts = append(parts, fmt.Sprintf("*%s*", c.Journal))
	}
	if c.URL != "" {
		parts = append(parts, fmt.Sprintf("Retrieved from %s", c.URL))
	}

	return strings.Join(parts, ". ") + "."
}

// formatMLA: Author, "Title", *Journal*, Year, Web. <access date>.
func formatMLA(c model.Components) string {
	var parts []string

	if c.Author != "" {
		parts = append(parts, c.Author)
	}
	if c.Title != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Title))
	}
	if c.Journal != "" {
		parts = append(parts, fmt.Sprintf("*%s*", c.Journal))
	}
	if c.Year != "" {
		parts = append(parts, c.Year)
	}
	if c.URL != "" {
		parts = append(parts, "Web. "+nowFunc().Format("02 Jan 2006"))
	}

	return strings.Join(parts, ", ") + "."
}

// formatChicago: Author, "Title", *Journal*, (Year), accessed <date>, URL.
func formatChicago(c model.Components) string {
	var parts []string

	if c.Author != "" {
		parts = append(parts, c.Author)
	}
	if c.Title != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Title))
	}
	if c.Journal != "" {
		parts = append(parts, fmt.Sprintf("*%s*", c.Journal))
	}
	if c.Year != "" {
		parts = append(parts, fmt.Sprintf("(%s)", c.Year))
	}
	if c.URL != "" {
		parts = append(parts, fmt.Sprintf("accessed %s, %s", nowFunc().Format("January 2, 2006"), c.URL))
	}

	return strings.Join(parts, ", ") + "."
}
