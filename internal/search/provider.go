package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/avezina/scrutiny/internal/cache"
	"github.com/avezina/scrutiny/internal/model"
)

// Provider supplies raw search hits for a query string. Providers do no
// query construction beyond passing the string through; scoring and
// ranking happen in the score package.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Search returns up to maxResults hits for the query
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error)
}

// NewProvider creates a search provider from configuration
func NewProvider(cfg model.SearchConfig, store cache.Cache) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "serper", "":
		return NewSerperProvider(cfg, store)
	default:
		return nil, fmt.Errorf("unknown search provider: %s (supported: serper)", cfg.Provider)
	}
}
