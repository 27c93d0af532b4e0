package jobsearch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/killallgit/jobscout-api/internal/metrics"
	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

// queryResult is the settled outcome of one provider call
type queryResult struct {
	query   string
	records []jsearch.RawRecord
	err     error
}

// FanOutResult holds the merged records of a fan-out and its per-query failures
type FanOutResult struct {
	Records []jsearch.RawRecord
	Issued  int
	Failed  []error
}

// AllFailed reports whether no provider call succeeded
func (r FanOutResult) AllFailed() bool {
	return r.Issued > 0 && len(r.Failed) == r.Issued
}

// FanOut issues one provider call per query concurrently and waits for all of them
type FanOut struct {
	provider    Provider
	countryCode string
}

// NewFanOut creates a fan-out executor over provider
func NewFanOut(provider Provider, countryCode string) *FanOut {
	return &FanOut{provider: provider, countryCode: countryCode}
}

// Execute runs every query against the provider. Individual failures are
// logged and excluded; it never returns early on a failed call. Records are
// concatenated in completion order.
func (f *FanOut) Execute(ctx context.Context, queries []string, location string, pageSize int) FanOutResult {
	p := pool.NewWithResults[queryResult]()
	for _, q := range queries {
		query := jsearch.Query{
			Text:     q,
			Location: location,
			Country:  f.countryCode,
			Page:     1,
			PageSize: pageSize,
		}
		p.Go(func() queryResult {
			start := time.Now()
			records, err := f.provider.Search(ctx, query)
			outcome := "success"
			if err != nil {
				outcome = "error"
			}
			metrics.RecordProviderRequest(outcome, time.Since(start).Seconds())
			return queryResult{query: query.Text, records: records, err: err}
		})
	}

	result := FanOutResult{Issued: len(queries)}
	for _, r := range p.Wait() {
		if r.err != nil {
			log.Warn().Err(r.err).Str("query", r.query).Msg("provider query failed, excluding from results")
			result.Failed = append(result.Failed, r.err)
			continue
		}
		result.Records = append(result.Records, r.records...)
	}

	if result.AllFailed() {
		log.Error().Int("queries", result.Issued).Msg("all provider queries failed")
	}
	return result
}
