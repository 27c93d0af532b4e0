package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jobscout-api/internal/services/cache"
	"github.com/killallgit/jobscout-api/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080},
		JSearch: config.JSearchConfig{BaseURL: "http://127.0.0.1:1", MinPages: 5, MaxPages: 10},
		Search: config.SearchConfig{
			Country:           "India",
			CountryCode:       "IN",
			DefaultLocation:   "India",
			MaxQueries:        3,
			EnhancedThreshold: 10,
			RequestTimeout:    time.Second,
		},
		Cache: config.CacheConfig{Backend: "memory", TTL: time.Minute, MaxEntries: 10},
	}
}

func TestNewApplication_Minimal(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.NotNil(t, app.searcher)
	assert.Nil(t, app.db)
	assert.Nil(t, app.cache)
	assert.Nil(t, app.searchLogs)

	deps := app.dependencies()
	assert.NotNil(t, deps.Searcher)
	assert.Nil(t, deps.DB)
}

func TestNewApplication_WithCacheAndDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Database.Path = filepath.Join(t.TempDir(), "jobscout.db")

	app, err := newApplication(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.db)
	assert.True(t, app.db.Migrator().HasTable("search_logs"))
	assert.NotNil(t, app.searchLogs)
	assert.Nil(t, app.janitor)
	_, isMemory := app.cache.(*cache.MemoryCache)
	assert.True(t, isMemory)
}

func TestNewCache(t *testing.T) {
	_, err := newCache(context.Background(), config.CacheConfig{Backend: "memcached"})
	assert.Error(t, err)

	_, err = newCache(context.Background(), config.CacheConfig{Backend: "redis", RedisURL: "not-a-url"})
	assert.Error(t, err)

	c, err := newCache(context.Background(), config.CacheConfig{Backend: "memory", TTL: time.Minute})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewApplication_RetentionStartsCleanup(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "jobscout.db")
	cfg.Database.Retention = 24 * time.Hour
	cfg.Database.CleanupInterval = time.Hour

	app, err := newApplication(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, app.janitor)

	app.startBackground(context.Background())
	assert.NoError(t, app.Close())
}
