package jobsearch

import (
	"context"
	"time"

	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

// Provider performs one upstream job search call
type Provider interface {
	Search(ctx context.Context, q jsearch.Query) ([]jsearch.RawRecord, error)
}

// SearchLogger records metadata about executed searches
type SearchLogger interface {
	Record(ctx context.Context, entry *models.SearchLog) error
}

// ResultCache stores the filtered, normalized job list of a search, keyed by request.
// Implementations live in internal/services/cache.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Searcher is the engine entry point consumed by the HTTP and CLI layers
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*Result, error)
}
