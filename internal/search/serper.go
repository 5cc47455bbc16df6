package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avezina/scrutiny/internal/cache"
	"github.com/avezina/scrutiny/internal/model"
)

const defaultSerperURL = "https://google.serper.dev/search"

// SerperProvider queries the Serper search API
type SerperProvider struct {
	apiKey     string
	baseURL    string
	region     string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
}

type serperRequest struct {
	Query  string `json:"q"`
	Num    int    `json:"num,omitempty"`
	Region string `json:"gl,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// NewSerperProvider creates a Serper provider. A nil cache disables
// response caching.
func NewSerperProvider(cfg model.SearchConfig, store cache.Cache) (*SerperProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serper API key is required (set SERPER_API_KEY)")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultSerperURL
	}

	return &SerperProvider{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		region:  cfg.Region,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:    store,
		cacheTTL: time.Hour,
	}, nil
}

// Name returns the provider name
func (p *SerperProvider) Name() string {
	return "serper"
}

// Search runs a query against the Serper API and maps organic results
// to search hits.
func (p *SerperProvider) Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	cacheKey := cache.Key("search", fmt.Sprintf("%s|%d|%s", query, maxResults, p.region))
	if hits, ok := p.fromCache(cacheKey); ok {
		return hits, nil
	}

	payload, err := json.Marshal(serperRequest{Query: query, Num: maxResults, Region: p.region})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API error: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed serperResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	hits := make([]model.SearchHit, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		hits = append(hits, model.SearchHit{
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.Link,
		})
		if len(hits) >= maxResults {
			break
		}
	}

	p.toCache(cacheKey, hits)
	return hits, nil
}

func (p *SerperProvider) fromCache(key string) ([]model.SearchHit, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, found := p.cache.Get(key)
	if !found {
		return nil, false
	}
	var hits []model.SearchHit
	if err := json.Unmarshal(data, &hits); err != nil {
		return nil, false
	}
	return hits, true
}

func (p *SerperProvider) toCache(key string, hits []model.SearchHit) {
	if p.cache == nil {
		return
	}
	if data, err := json.Marshal(hits); err == nil {
		_ = p.cache.Set(key, data, p.cacheTTL)
	}
}
