package validate

import (
	"context"
	"net/http"
	"regexp"
	"time"
)

var doiFormat = regexp.MustCompile(`^10\.\d{4,}/[^\s]+$`)

// doiResolverURL is overridable in tests
var doiResolverURL = "https://doi.org/"

// CheckDOI verifies that a DOI is well-formed and resolves through the
// doi.org handle service. Resolution failures are treated as a negative
// answer, not an error.
func CheckDOI(ctx context.Context, doi string) bool {
	if !doiFormat.MatchString(doi) {
		return false
	}

	client := &http.Client{
		Timeout: 5 * time.Second,
		// The handle service answers 302 to the publisher; don't follow it
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, doiResolverURL+doi, nil)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusFound
}
