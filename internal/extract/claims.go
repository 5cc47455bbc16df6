package extract

import (
	"regexp"
	"strings"
)

// claims are fragments longer than this after trimming
const minClaimLength = 10

var claimSplitPattern = regexp.MustCompile(`[.!?]+|\n+`)

// ParseClaims splits free text into individual claim statements.
// Sentence terminators and newlines both delimit claims; fragments of
// 10 characters or fewer, and fragments starting with a URL scheme or
// www, are dropped. The split runs first, so the path remnants of a
// dotted URL can survive as fragments of their own.
func ParseClaims(text string) []string {
	var claims []string
	for _, s := range claimSplitPattern.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) <= minClaimLength {
			continue
		}
		if strings.HasPrefix(s, "http") || strings.HasPrefix(s, "www") {
			continue
		}
		claims = append(claims, s)
	}
	return claims
}
