package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides (JOBSCOUT_SERVER_PORT, ...)
const EnvPrefix = "JOBSCOUT"

var (
	mu      sync.Mutex
	loaded  bool
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return initErr
	}
	loaded = true

	// A missing .env is the normal case outside local development
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) && !os.IsNotExist(err) {
			initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
			return initErr
		}
	}

	if err := validate(); err != nil {
		initErr = fmt.Errorf("invalid configuration: %w", err)
	}

	return initErr
}

// Reset clears loaded state so Init can run again. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = false
	initErr = nil
	viper.Reset()
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value at runtime (command line flags)
func Set(key string, value any) {
	viper.Set(key, value)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", port))
	}

	if viper.GetInt("search.max_queries") <= 0 {
		viper.Set("search.max_queries", 3)
	}

	minPages := viper.GetInt("jsearch.min_pages")
	maxPages := viper.GetInt("jsearch.max_pages")
	if minPages <= 0 || maxPages < minPages {
		return apperrors.ConfigError("jsearch.min_pages", fmt.Sprintf("invalid provider page range: min %d, max %d", minPages, maxPages))
	}

	if backend := viper.GetString("cache.backend"); backend != "memory" && backend != "redis" {
		return apperrors.ConfigError("cache.backend", fmt.Sprintf("unsupported backend %q", backend))
	}

	return validateAPIKeys()
}

// validateAPIKeys rejects placeholder provider credentials in production
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	apiKey := viper.GetString("jsearch.api_key")
	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			if isProduction {
				return apperrors.ConfigError("jsearch.api_key", "cannot use placeholder values in production")
			}
			log.Warn().Msg("JSearch API key is not configured; provider calls will be rejected upstream")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", c.Server.Port))
	}

	if c.JSearch.MinPages <= 0 || c.JSearch.MaxPages < c.JSearch.MinPages {
		return apperrors.ConfigError("jsearch.min_pages", fmt.Sprintf("invalid provider page range: min %d, max %d", c.JSearch.MinPages, c.JSearch.MaxPages))
	}

	if c.Search.MaxQueries <= 0 {
		c.Search.MaxQueries = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Search log database
	viper.SetDefault("database.path", "./data/jobscout.db")
	viper.SetDefault("database.verbose", false)
	viper.SetDefault("database.retention", 30*24*time.Hour)
	viper.SetDefault("database.cleanup_interval", time.Hour)

	// Provider defaults
	viper.SetDefault("jsearch.api_key", "")
	viper.SetDefault("jsearch.api_host", "jsearch.p.rapidapi.com")
	viper.SetDefault("jsearch.base_url", "https://jsearch.p.rapidapi.com")
	viper.SetDefault("jsearch.timeout", 30*time.Second)
	viper.SetDefault("jsearch.user_agent", "JobScoutAPI/1.0")
	viper.SetDefault("jsearch.min_pages", 5)
	viper.SetDefault("jsearch.max_pages", 10)

	// Engine defaults
	viper.SetDefault("search.country", "India")
	viper.SetDefault("search.country_code", "IN")
	viper.SetDefault("search.default_location", "India")
	viper.SetDefault("search.max_queries", 3)
	viper.SetDefault("search.enhanced_threshold", 10)
	viper.SetDefault("search.request_timeout", 45*time.Second)
	viper.SetDefault("search.match_score", 85)
	viper.SetDefault("search.source", "JSearch")

	// Result cache is opt-in
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", 10*time.Minute)
	viper.SetDefault("cache.max_entries", 500)
	viper.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("cache.key_prefix", "jobscout:")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Origin", "Content-Type", "Authorization"})
	viper.SetDefault("security.max_body_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
