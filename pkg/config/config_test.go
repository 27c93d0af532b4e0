package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// chdirTemp moves the test into an empty directory so no stray settings file is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	return dir
}

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "settings.yaml"), []byte(content), 0644))
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name:  "missing config file uses defaults",
			setup: func(t *testing.T, dir string) {},
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, "India", GetString("search.country"))
				assert.Equal(t, 3, GetInt("search.max_queries"))
				assert.False(t, GetBool("cache.enabled"))
				assert.Equal(t, 10*time.Minute, GetDuration("cache.ttl"))
			},
		},
		{
			name: "load from settings.yaml",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, `
server:
  port: 9191
search:
  max_queries: 5
  country: "India"
`)
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9191, GetInt("server.port"))
				assert.Equal(t, 5, GetInt("search.max_queries"))
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, "server:\n  port: 8080\n")
				t.Setenv("JOBSCOUT_SERVER_PORT", "9090")
				t.Setenv("JOBSCOUT_JSEARCH_API_KEY", "env-key")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
				assert.Equal(t, "env-key", GetString("jsearch.api_key"))
			},
		},
		{
			name: "non-positive query cap is corrected",
			setup: func(t *testing.T, dir string) {
				t.Setenv("JOBSCOUT_SEARCH_MAX_QUERIES", "0")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 3, GetInt("search.max_queries"))
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T, dir string) {
				t.Setenv("JOBSCOUT_SERVER_PORT", "70000")
			},
			wantErr: true,
		},
		{
			name: "unknown cache backend",
			setup: func(t *testing.T, dir string) {
				t.Setenv("JOBSCOUT_CACHE_BACKEND", "memcached")
			},
			wantErr: true,
		},
		{
			name: "placeholder key rejected in production",
			setup: func(t *testing.T, dir string) {
				t.Setenv("JOBSCOUT_ENVIRONMENT", "production")
				t.Setenv("JOBSCOUT_JSEARCH_API_KEY", "changeme")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdirTemp(t)
			Reset()
			t.Cleanup(Reset)
			tt.setup(t, dir)

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestInit_ErrorsCarryConfigCode(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{"invalid port", map[string]string{"JOBSCOUT_SERVER_PORT": "70000"}, "server.port"},
		{"unknown cache backend", map[string]string{"JOBSCOUT_CACHE_BACKEND": "memcached"}, "cache.backend"},
		{"inverted page range", map[string]string{"JOBSCOUT_JSEARCH_MIN_PAGES": "8", "JOBSCOUT_JSEARCH_MAX_PAGES": "2"}, "jsearch.min_pages"},
		{"placeholder key in production", map[string]string{"JOBSCOUT_ENVIRONMENT": "production", "JOBSCOUT_JSEARCH_API_KEY": "changeme"}, "jsearch.api_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			Reset()
			t.Cleanup(Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Init()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantKey, appErr.Details["key"])
		})
	}
}

func TestGetConfig(t *testing.T) {
	chdirTemp(t)
	Reset()
	t.Cleanup(Reset)
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.JSearch.Timeout)
	assert.Equal(t, 5, cfg.JSearch.MinPages)
	assert.Equal(t, 10, cfg.JSearch.MaxPages)
	assert.Equal(t, "IN", cfg.Search.CountryCode)
	assert.Equal(t, 85, cfg.Search.MatchScore)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.Retention)
	assert.Equal(t, time.Hour, cfg.Database.CleanupInterval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server:  ServerConfig{Port: 8080},
				JSearch: JSearchConfig{MinPages: 5, MaxPages: 10},
				Search:  SearchConfig{MaxQueries: 3},
			},
		},
		{
			name: "invalid port",
			config: &Config{
				Server:  ServerConfig{Port: 0},
				JSearch: JSearchConfig{MinPages: 5, MaxPages: 10},
			},
			wantErr: true,
		},
		{
			name: "inverted page range",
			config: &Config{
				Server:  ServerConfig{Port: 8080},
				JSearch: JSearchConfig{MinPages: 10, MaxPages: 5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ValidateCorrectsQueryCap(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8080},
		JSearch: JSearchConfig{MinPages: 5, MaxPages: 10},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Search.MaxQueries)
}
