package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	JSearch      JSearchConfig    `mapstructure:"jsearch"`
	Search       SearchConfig     `mapstructure:"search"`
	Cache        CacheConfig      `mapstructure:"cache"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Monitoring   MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains settings for the search log database.
// An empty Path disables search logging. A zero Retention keeps rows forever.
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	Verbose         bool          `mapstructure:"verbose"`
	Retention       time.Duration `mapstructure:"retention"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// JSearchConfig contains job-search provider settings
type JSearchConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	APIHost   string        `mapstructure:"api_host"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	MinPages  int           `mapstructure:"min_pages"`
	MaxPages  int           `mapstructure:"max_pages"`
}

// SearchConfig contains aggregation engine settings
type SearchConfig struct {
	Country           string        `mapstructure:"country"`
	CountryCode       string        `mapstructure:"country_code"`
	DefaultLocation   string        `mapstructure:"default_location"`
	MaxQueries        int           `mapstructure:"max_queries"`
	EnhancedThreshold int           `mapstructure:"enhanced_threshold"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	MatchScore        int           `mapstructure:"match_score"`
	Source            string        `mapstructure:"source"`
}

// CacheConfig contains result cache settings
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Backend    string        `mapstructure:"backend"` // memory or redis
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
	RedisURL   string        `mapstructure:"redis_url"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	SearchRPS   int  `mapstructure:"search_rps"`
	SearchBurst int  `mapstructure:"search_burst"`
}

// SecurityConfig contains CORS and request limits
type SecurityConfig struct {
	CORSOrigins  []string `mapstructure:"cors_origins"`
	CORSMethods  []string `mapstructure:"cors_methods"`
	CORSHeaders  []string `mapstructure:"cors_headers"`
	MaxBodyBytes int64    `mapstructure:"max_body_bytes"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}
