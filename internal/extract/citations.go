package extract

import (
	"regexp"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Separators that commonly delimit citations in pasted bibliographies:
// blank lines, bullet markers, and the first few numbered-list markers.
var citationSeparators = []string{"\n\n", "\n•", "\n-", "\n1.", "\n2.", "\n3."}

// minCitationLength filters out noise fragments, not a semantic guarantee
const minCitationLength = 20

var (
	urlPattern     = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	doiPattern     = regexp.MustCompile(`10\.\d{4,}/[^\s]+`)
	quotedPattern  = regexp.MustCompile(`"([^"]+)"`)
	smartPattern   = regexp.MustCompile(`[“”]([^“”]+)[“”]`)
	journalPattern = regexp.MustCompile(`\*([^*]+)\*`)
	underPattern   = regexp.MustCompile(`_([^_]+)_`)
)

// ParseCitations splits free text into individual citation strings.
// Order is preserved and duplicates are kept; fragments of 20 characters
// or fewer after trimming are discarded.
func ParseCitations(text string) []string {
	parts := []string{text}
	for _, sep := range citationSeparators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}

	var citations []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minCitationLength {
			citations = append(citations, p)
		}
	}
	return citations
}

// Components extracts structured fields from a single citation using
// regex patterns. Every field is independently optional; a miss is not
// an error at this stage.
func Components(citation string) model.Components {
	var c model.Components

	if m := urlPattern.FindString(citation); m != "" {
		c.URL = m
	}

	// Prefer the last year-like match: citation years typically trail
	// author names and may collide with volume/page numbers earlier on.
	if years := yearPattern.FindAllString(citation, -1); len(years) > 0 {
		c.Year = years[len(years)-1]
	}

	if m := doiPattern.FindString(citation); m != "" {
		c.DOI = m
	}

	if m := quotedPattern.FindStringSubmatch(citation); m != nil {
		c.Title = m[1]
	} else if m := smartPattern.FindStringSubmatch(citation); m != nil {
		c.Title = m[1]
	}

	// Author: text immediately preceding "(<year>)" when a year was found
	if c.Year != "" {
		authorPattern := regexp.MustCompile(`([^.]+?)\s*\(` + regexp.QuoteMeta(c.Year) + `\)`)
		if m := authorPattern.FindStringSubmatch(citation); m != nil {
			c.Author = strings.TrimSpace(m[1])
		}
	}

	if m := journalPattern.FindStringSubmatch(citation); m != nil {
		c.Journal = m[1]
	} else if m := underPattern.FindStringSubmatch(citation); m != nil {
		c.Journal = m[1]
	}

	return c
}
