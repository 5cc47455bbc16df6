package score

import (
	"regexp"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Overlap thresholds and their fixed confidence values. These are
// discrete buckets: confidence is a lookup keyed by bucket, never a
// continuous function of overlap.
const (
	strongOverlap  = 0.7
	partialOverlap = 0.4

	strongConfidence       = 0.9
	partialConfidence      = 0.6
	insufficientConfidence = 0.3
)

var wordPattern = regexp.MustCompile(`\w+`)

// VerifyClaim checks a single claim against a source corpus using
// lexical overlap. This is a deliberately crude proxy for evidential
// support: no semantic matching, no negation handling.
func VerifyClaim(claim string, sources string) model.Verification {
	v := model.Verification{Claim: claim}

	claimTokens := tokenSet(claim)
	if len(claimTokens) == 0 {
		v.Status = model.StatusInsufficientEvidence
		v.Confidence = insufficientConfidence
		v.Analysis = "Claim contains no checkable terms"
		return v
	}

	sourceTokens := tokenSet(sources)
	matching := 0
	for token := range claimTokens {
		if sourceTokens[token] {
			matching++
		}
	}
	v.Overlap = float64(matching) / float64(len(claimTokens))

	switch {
	case v.Overlap >= strongOverlap:
		v.Status = model.StatusStronglySupported
		v.Confidence = strongConfidence
		v.Analysis = "High keyword overlap with sources suggests strong support"
	case v.Overlap >= partialOverlap:
		v.Status = model.StatusPartiallySupported
		v.Confidence = partialConfidence
		v.Analysis = "Moderate keyword overlap suggests partial support"
	default:
		v.Status = model.StatusInsufficientEvidence
		v.Confidence = insufficientConfidence
		v.Analysis = "Low keyword overlap suggests insufficient supporting evidence"
	}

	return v
}

// VerifyClaims verifies each claim independently; one claim's outcome
// never affects its siblings.
func VerifyClaims(claims []string, sources string) []model.Verification {
	verifications := make([]model.Verification, 0, len(claims))
	for i, claim := range claims {
		v := VerifyClaim(claim, sources)
		v.Number = i + 1
		verifications = append(verifications, v)
	}
	return verifications
}

// OverallReliability returns the mean confidence across verifications,
// 0.0 for an empty batch.
func OverallReliability(verifications []model.Verification) float64 {
	if len(verifications) == 0 {
		return 0.0
	}
	total := 0.0
	for _, v := range verifications {
		total += v.Confidence
	}
	return total / float64(len(verifications))
}

// tokenSet lowercases text and returns its set of word tokens
func tokenSet(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		tokens[w] = true
	}
	return tokens
}
