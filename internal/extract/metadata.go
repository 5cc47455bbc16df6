package extract

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avezina/scrutiny/internal/model"
	"github.com/avezina/scrutiny/internal/util"
	"golang.org/x/net/html"
)

// MetadataFetcher fetches a citation's landing page and extracts metadata
// hints (title, author, description) for citation enrichment. It honors
// robots.txt and never feeds into scoring.
type MetadataFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
}

// NewMetadataFetcher creates a new metadata fetcher
func NewMetadataFetcher(timeout time.Duration, userAgent string, maxBytes int64, httpProxy, httpsProxy, noProxy string, insecureTLS bool) *MetadataFetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(httpProxy, httpsProxy, noProxy),
	}
	if insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &MetadataFetcher{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		robots:    util.NewRobotsChecker(userAgent, timeout),
	}
}

// Fetch retrieves page metadata for the given URL. Returns nil without
// error when robots.txt disallows the fetch or the page is not HTML enough
// to yield anything.
func (f *MetadataFetcher) Fetch(ctx context.Context, rawURL string) (*model.PageMeta, error) {
	if !f.robots.IsAllowed(ctx, rawURL) {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return ParsePageMeta(string(body)), nil
}

// ParsePageMeta extracts the page title and common meta tags from HTML.
// A page with no recognizable metadata yields nil.
func ParsePageMeta(htmlContent string) *model.PageMeta {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	var meta model.PageMeta

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if meta.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					meta.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				name, content := "", ""
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name", "property":
						name = strings.ToLower(attr.Val)
					case "content":
						content = strings.TrimSpace(attr.Val)
					}
				}
				if content == "" {
					break
				}
				switch name {
				case "author", "article:author":
					if meta.Author == "" {
						meta.Author = content
					}
				case "description", "og:description":
					if meta.Description == "" {
						meta.Description = content
					}
				case "keywords":
					if meta.Keywords == "" {
						meta.Keywords = content
					}
				case "published-time", "article:published-time", "article:published_time":
					if meta.Published == "" {
						meta.Published = content
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if meta == (model.PageMeta{}) {
		return nil
	}
	return &meta
}
