package model

// SupportStatus classifies how well a claim is supported by the sources
type SupportStatus string

const (
	StatusStronglySupported    SupportStatus = "strongly_supported"
	StatusPartiallySupported   SupportStatus = "partially_supported"
	StatusInsufficientEvidence SupportStatus = "insufficient_evidence"
)

// Verification is the result of checking one claim against a source corpus.
// Confidence is a fixed per-bucket value, not a continuous function of overlap.
type Verification struct {
	Number     int           `json:"claim_number"`
	Claim      string        `json:"claim"`
	Overlap    float64       `json:"keyword_overlap"`
	Status     SupportStatus `json:"verification_status"`
	Confidence float64       `json:"confidence_score"`
	Analysis   string        `json:"analysis,omitempty"`
}
