// Package metrics holds the Prometheus collectors for the search engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProviderRequestsTotal counts upstream provider calls by outcome
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobscout",
			Name:      "provider_requests_total",
			Help:      "Total number of job provider requests",
		},
		[]string{"outcome"},
	)

	ProviderRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "jobscout",
			Name:      "provider_request_duration_seconds",
			Help:      "Job provider request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// SearchTotal counts aggregated searches by mode and outcome
	SearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobscout",
			Name:      "search_total",
			Help:      "Total number of job searches",
		},
		[]string{"mode", "outcome"},
	)

	SearchJobsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "jobscout",
			Name:      "search_jobs_returned",
			Help:      "Jobs in the filtered result set of a search, before pagination",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250},
		},
	)

	CacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobscout",
			Name:      "cache_total",
			Help:      "Result cache lookups by result",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordProviderRequest records one upstream provider call
func RecordProviderRequest(outcome string, durationSec float64) {
	ProviderRequestsTotal.WithLabelValues(outcome).Inc()
	ProviderRequestDuration.Observe(durationSec)
}

// RecordSearch records one aggregated search and the size of its result set
func RecordSearch(mode, outcome string, totalJobs int) {
	SearchTotal.WithLabelValues(mode, outcome).Inc()
	SearchJobsReturned.Observe(float64(totalJobs))
}

// RecordCache records a result cache hit or miss
func RecordCache(hit bool) {
	if hit {
		CacheTotal.WithLabelValues("hit").Inc()
		return
	}
	CacheTotal.WithLabelValues("miss").Inc()
}
