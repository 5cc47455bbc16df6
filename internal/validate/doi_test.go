package validate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withDOIResolver(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	orig := doiResolverURL
	doiResolverURL = server.URL + "/"
	t.Cleanup(func() {
		doiResolverURL = orig
		server.Close()
	})
}

func TestCheckDOI_MalformedRejectedWithoutRequest(t *testing.T) {
	requests := 0
	withDOIResolver(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	for _, doi := range []string{"", "not-a-doi", "10.12/too-short-prefix", "10.1234/has space"} {
		if CheckDOI(context.Background(), doi) {
			t.Errorf("expected %q to be rejected", doi)
		}
	}
	if requests != 0 {
		t.Errorf("malformed DOIs should not reach the resolver, saw %d requests", requests)
	}
}

func TestCheckDOI_ResolvesViaRedirect(t *testing.T) {
	withDOIResolver(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.Header().Set("Location", "https://publisher.example/article")
		w.WriteHeader(http.StatusFound)
	})

	if !CheckDOI(context.Background(), "10.1234/abc.def") {
		t.Error("expected 302 from the handle service to count as resolved")
	}
}

func TestCheckDOI_NotFound(t *testing.T) {
	withDOIResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if CheckDOI(context.Background(), "10.9999/does.not.exist") {
		t.Error("expected unresolved DOI to fail the check")
	}
}
