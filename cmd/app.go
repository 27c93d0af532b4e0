package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/killallgit/jobscout-api/api/types"
	"github.com/killallgit/jobscout-api/internal/database"
	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/cache"
	"github.com/killallgit/jobscout-api/internal/services/cleanup"
	"github.com/killallgit/jobscout-api/internal/services/jobsearch"
	"github.com/killallgit/jobscout-api/internal/services/jsearch"
	"github.com/killallgit/jobscout-api/internal/services/searchlog"
	"github.com/killallgit/jobscout-api/pkg/config"
)

// application holds the wired service graph shared by serve and search
type application struct {
	cfg        *config.Config
	db         *database.DB
	cache      cache.Cache
	searchLogs searchlog.Repository
	searcher   *jobsearch.Service
	janitor    *cleanup.Service
	closers    []func() error
}

// newApplication builds the provider client, result cache, search log and engine from cfg
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{cfg: cfg}

	client := jsearch.NewClient(jsearch.Config{
		APIKey:    cfg.JSearch.APIKey,
		APIHost:   cfg.JSearch.APIHost,
		BaseURL:   cfg.JSearch.BaseURL,
		UserAgent: cfg.JSearch.UserAgent,
		Timeout:   cfg.JSearch.Timeout,
		MinPages:  cfg.JSearch.MinPages,
		MaxPages:  cfg.JSearch.MaxPages,
	})

	var opts []jobsearch.Option

	if cfg.Cache.Enabled {
		resultCache, err := newCache(ctx, cfg.Cache)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.cache = resultCache
		opts = append(opts, jobsearch.WithCache(resultCache))
	}

	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
		app.closers = append(app.closers, db.Close)

		if err := db.AutoMigrate(&models.SearchLog{}); err != nil {
			app.Close()
			return nil, err
		}

		app.searchLogs = searchlog.NewRepository(db.DB)
		opts = append(opts, jobsearch.WithSearchLogger(app.searchLogs))

		if cfg.Database.Retention > 0 && cfg.Database.CleanupInterval > 0 {
			app.janitor = cleanup.NewService(app.searchLogs, cfg.Database.Retention, cfg.Database.CleanupInterval)
		}
	} else {
		log.Info().Msg("database path is empty, search logging disabled")
	}

	app.searcher = jobsearch.NewService(client, jobsearch.Config{
		Country:           cfg.Search.Country,
		CountryCode:       cfg.Search.CountryCode,
		DefaultLocation:   cfg.Search.DefaultLocation,
		MaxQueries:        cfg.Search.MaxQueries,
		EnhancedThreshold: cfg.Search.EnhancedThreshold,
		RequestTimeout:    cfg.Search.RequestTimeout,
		MatchScore:        cfg.Search.MatchScore,
		Source:            cfg.Search.Source,
		CacheTTL:          cfg.Cache.TTL,
	}, opts...)

	return app, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		log.Info().Str("backend", "redis").Dur("ttl", cfg.TTL).Msg("result cache enabled")
		return rc, nil
	case "", "memory":
		log.Info().Str("backend", "memory").Dur("ttl", cfg.TTL).Int("max_entries", cfg.MaxEntries).Msg("result cache enabled")
		return cache.NewMemoryCache(cfg.TTL, cfg.MaxEntries), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %q", cfg.Backend)
	}
}

// dependencies exposes the graph to the HTTP handlers
func (a *application) dependencies() *types.Dependencies {
	return &types.Dependencies{
		DB:         a.db,
		Searcher:   a.searcher,
		SearchLogs: a.searchLogs,
		Cache:      a.cache,
	}
}

// startBackground starts search log pruning when retention is configured
func (a *application) startBackground(ctx context.Context) {
	if a.janitor != nil {
		a.janitor.Start(ctx)
	}
}

// Close stops background work and releases the database and cache connections
func (a *application) Close() error {
	if a.janitor != nil {
		a.janitor.Stop()
	}
	var errs []error
	if rc, ok := a.cache.(*cache.RedisCache); ok {
		errs = append(errs, rc.Close())
	}
	for _, closer := range a.closers {
		errs = append(errs, closer())
	}
	return errors.Join(errs...)
}
