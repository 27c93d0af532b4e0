package jobsearch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/killallgit/jobscout-api/internal/metrics"
	"github.com/killallgit/jobscout-api/internal/models"
	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// Config holds the engine settings
type Config struct {
	Country           string
	CountryCode       string
	DefaultLocation   string
	MaxQueries        int
	EnhancedThreshold int
	RequestTimeout    time.Duration
	MatchScore        int
	Source            string
	CacheTTL          time.Duration
}

// Stats describes how a result was produced
type Stats struct {
	Queries       []string `json:"queries"`
	QueriesIssued int      `json:"queriesIssued"` // zero on a cache hit
	QueriesFailed int      `json:"queriesFailed"`
	RawCount      int      `json:"rawCount"`
	UniqueCount   int      `json:"uniqueCount"`
	CacheHit      bool     `json:"cacheHit"`
}

// Result is one page of an aggregated search
type Result struct {
	Jobs       []models.Job
	Pagination models.Pagination
	Enhanced   bool
	Message    string
	Stats      Stats
}

// Option configures optional Service collaborators
type Option func(*Service)

// WithCache enables the result cache
func WithCache(cache ResultCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithSearchLogger records every executed search
func WithSearchLogger(logger SearchLogger) Option {
	return func(s *Service) { s.searchLog = logger }
}

// Service runs the full aggregation pipeline: query expansion, fan-out,
// dedup, location filtering, normalization and pagination.
type Service struct {
	cfg        Config
	builder    *QueryBuilder
	fanOut     *FanOut
	filter     *LocationFilter
	normalizer *Normalizer
	cache      ResultCache
	searchLog  SearchLogger
}

// NewService creates the search engine over provider
func NewService(provider Provider, cfg Config, opts ...Option) *Service {
	if cfg.Country == "" {
		cfg.Country = "India"
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = "IN"
	}
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = cfg.Country
	}
	if cfg.Source == "" {
		cfg.Source = "JSearch"
	}

	s := &Service{
		cfg:        cfg,
		builder:    NewQueryBuilder(cfg.Country, cfg.MaxQueries, cfg.EnhancedThreshold),
		fanOut:     NewFanOut(provider, cfg.CountryCode),
		filter:     NewLocationFilter(cfg.Country, cfg.CountryCode),
		normalizer: NewNormalizer(cfg.Country, cfg.MatchScore, cfg.Source),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search executes req. When every provider call fails it returns an empty,
// well-formed Result together with ErrAllProvidersFailed.
//
// The fan-out runs under RequestTimeout when it is set. A provider call still
// in flight at the deadline fails like any other call: it becomes a
// jsearch.ProviderError and is excluded from the result.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	start := time.Now()
	req = req.WithDefaults(s.cfg.DefaultLocation)

	if req.Page < 1 {
		return nil, apperrors.ValidationError("page", "must be at least 1")
	}
	if !models.IsAllowedPageSize(req.PageSize) {
		return nil, apperrors.ValidationError("pageSize", "must be one of 5, 10, 20, 50, 100")
	}

	queries, err := s.builder.Build(req)
	if err != nil {
		return nil, err
	}
	enhanced := s.builder.IsEnhanced(req)
	mode := "standard"
	if enhanced {
		mode = "enhanced"
	}
	log.Debug().Strs("queries", queries).Str("location", req.Location).Bool("enhanced", enhanced).Msg("expanded search queries")

	stats := Stats{Queries: queries}
	key := cacheKey(req, enhanced)

	jobs, hit := s.cached(ctx, key)
	if hit {
		stats.CacheHit = true
	} else {
		searchCtx := ctx
		if s.cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			searchCtx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
			defer cancel()
		}

		fanned := s.fanOut.Execute(searchCtx, queries, req.Location, req.PageSize)
		stats.QueriesIssued = fanned.Issued
		stats.QueriesFailed = len(fanned.Failed)
		stats.RawCount = len(fanned.Records)

		if fanned.AllFailed() {
			metrics.RecordSearch(mode, "failed", 0)
			s.record(ctx, req, stats, 0, start)
			return &Result{
				Jobs:     []models.Job{},
				Enhanced: enhanced,
				Message:  "No jobs found",
				Stats:    stats,
			}, ErrAllProvidersFailed
		}

		unique := Deduplicate(fanned.Records)
		stats.UniqueCount = len(unique)
		jobs = s.normalizer.Normalize(s.filter.Filter(unique, req.Location))

		if len(fanned.Failed) == 0 {
			s.store(ctx, key, jobs)
		}
	}

	pageJobs, pagination := Paginate(jobs, req.Page, req.PageSize)

	log.Info().
		Strs("queries", queries).
		Int("raw", stats.RawCount).
		Int("unique", stats.UniqueCount).
		Int("filtered", len(jobs)).
		Int("returned", len(pageJobs)).
		Bool("cache_hit", stats.CacheHit).
		Dur("duration", time.Since(start)).
		Msg("job search complete")

	outcome := "success"
	if stats.QueriesFailed > 0 {
		outcome = "partial"
	}
	metrics.RecordSearch(mode, outcome, len(jobs))
	s.record(ctx, req, stats, len(jobs), start)

	return &Result{
		Jobs:       pageJobs,
		Pagination: pagination,
		Enhanced:   enhanced,
		Message:    message(len(jobs)),
		Stats:      stats,
	}, nil
}

func (s *Service) cached(ctx context.Context, key string) ([]models.Job, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		metrics.RecordCache(false)
		return nil, false
	}
	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		metrics.RecordCache(false)
		return nil, false
	}
	metrics.RecordCache(true)
	return jobs, true
}

func (s *Service) store(ctx context.Context, key string, jobs []models.Job) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode search result for cache")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.CacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache search result")
	}
}

func (s *Service) record(ctx context.Context, req models.SearchRequest, stats Stats, total int, start time.Time) {
	if s.searchLog == nil {
		return
	}
	entry := &models.SearchLog{
		Query:         BaseQuery(req),
		Location:      req.Location,
		Enhanced:      s.builder.IsEnhanced(req),
		Page:          req.Page,
		PageSize:      req.PageSize,
		QueriesIssued: stats.QueriesIssued,
		QueriesFailed: stats.QueriesFailed,
		RawCount:      stats.RawCount,
		UniqueCount:   stats.UniqueCount,
		TotalJobs:     total,
		CacheHit:      stats.CacheHit,
		DurationMS:    time.Since(start).Milliseconds(),
	}
	if err := s.searchLog.Record(context.WithoutCancel(ctx), entry); err != nil {
		log.Warn().Err(err).Msg("failed to record search log")
	}
}

// cacheKey identifies the full result set of req; the page number is not part of it
func cacheKey(req models.SearchRequest, enhanced bool) string {
	parts := []string{
		strings.ToLower(req.Title),
		strings.ToLower(req.Location),
		strings.ToLower(req.Keywords),
		strconv.FormatBool(enhanced),
		strconv.Itoa(req.PageSize),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return "search:" + hex.EncodeToString(sum[:])
}

func message(total int) string {
	if total == 0 {
		return "No jobs found"
	}
	return fmt.Sprintf("Found %d jobs", total)
}
