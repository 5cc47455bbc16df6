package validate

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avezina/scrutiny/internal/cache"
	"github.com/avezina/scrutiny/internal/model"
	"github.com/avezina/scrutiny/internal/util"
	"github.com/avezina/scrutiny/internal/worker"
)

// URLChecker checks URL reachability with bounded concurrency.
// Checks are single-shot: a failed check yields a failed record and the
// caller re-runs validation to retry.
type URLChecker struct {
	httpClient *http.Client
	userAgent  string
	maxWorkers int
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewURLChecker creates a new URL checker. A nil cache disables caching.
func NewURLChecker(timeout time.Duration, userAgent string, maxWorkers int, rps float64, burst int, store cache.Cache, httpProxy, httpsProxy, noProxy string, insecureTLS bool) *URLChecker {
	if maxWorkers <= 0 {
		maxWorkers = 20
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rps <= 0 {
		rps = 2
	}

	transport := &http.Transport{
		Proxy: util.NewProxyFunc(httpProxy, httpsProxy, noProxy),
	}
	if insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &URLChecker{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent:  userAgent,
		maxWorkers: maxWorkers,
		limiter:    worker.NewLimiter(rps, burst),
		cache:      store,
		cacheTTL:   15 * time.Minute,
	}
}

// Check performs a single HEAD request against the URL, following
// redirects. Reachable means status 200 exactly; any other status or
// network failure is recorded in the Error field, never returned as an
// error to the caller.
func (c *URLChecker) Check(ctx context.Context, rawURL string) *model.URLCheck {
	result := &model.URLCheck{URL: rawURL}

	if parsed, err := url.Parse(rawURL); err == nil {
		result.Domain = parsed.Host
		result.IsSecure = parsed.Scheme == "https"
	}

	if cached, ok := c.fromCache(rawURL); ok {
		return cached
	}

	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		result.Error = fmt.Sprintf("rate limit wait: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	result.ResponseTime = float64(time.Since(start)) / float64(time.Second)

	if err != nil {
		result.Error = classifyNetworkError(err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Reachable = resp.StatusCode == http.StatusOK
	if !result.Reachable {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	c.toCache(rawURL, result)
	return result
}

// CheckBatch checks many URLs concurrently with a worker semaphore.
// Result order matches input order; a failure on one URL never aborts
// the others.
func (c *URLChecker) CheckBatch(ctx context.Context, urls []string) []*model.URLCheck {
	results := make([]*model.URLCheck, len(urls))
	if len(urls) == 0 {
		return results
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.maxWorkers)

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, rawURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = &model.URLCheck{URL: rawURL, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.Check(ctx, rawURL)
		}(i, u)
	}

	wg.Wait()
	return results
}

func (c *URLChecker) fromCache(rawURL string) (*model.URLCheck, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, found := c.cache.Get(cache.Key("urlcheck", rawURL))
	if !found {
		return nil, false
	}
	var check model.URLCheck
	if err := json.Unmarshal(data, &check); err != nil {
		return nil, false
	}
	return &check, true
}

func (c *URLChecker) toCache(rawURL string, check *model.URLCheck) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(check)
	if err != nil {
		return
	}
	_ = c.cache.Set(cache.Key("urlcheck", rawURL), data, c.cacheTTL)
}

// classifyNetworkError maps transport errors to the short error strings
// recorded in reports
func classifyNetworkError(err error) string {
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded"):
		return "Request timeout"
	case strings.Contains(s, "connection refused") || strings.Contains(s, "no such host"):
		return "Connection failed"
	default:
		return err.Error()
	}
}
