// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultJWTSecret is the development-only signing secret. Load warns
// callers via Validate when it is used outside development.
const DefaultJWTSecret = "change-me-in-production"

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8000"`

	// Database (SQLite)
	DatabasePath string `env:"DATABASE_PATH" envDefault:"seo_assistant.db"`

	// Flat-file artifact storage root
	StorageDir string `env:"STORAGE_DIR" envDefault:"storage"`

	// Cache (Redis, optional). Rate limiting is disabled when empty.
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// Auth
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"30m"`

	// Gemini generation API
	GeminiAPIKey  string `env:"GEMINI_API_KEY" envDefault:""`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// Wikipedia search API (overridable for tests)
	WikipediaAPIURL string `env:"WIKIPEDIA_API_URL" envDefault:"https://en.wikipedia.org/w/api.php"`

	// Outbound HTTP behavior
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	MaxRetries  int           `env:"MAX_RETRIES" envDefault:"3"`

	// Context cache
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"100"`

	// Request caps
	BulkMaxKeywords     int `env:"BULK_MAX_KEYWORDS" envDefault:"50"`
	CalendarMaxKeywords int `env:"CALENDAR_MAX_KEYWORDS" envDefault:"100"`

	// Background task retention
	TaskRetention time.Duration `env:"TASK_RETENTION" envDefault:"1h"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting (per authenticated user; requires Redis)
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst   int  `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesDefaultJWTSecret reports whether the insecure default secret is active.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IsProduction() && c.UsesDefaultJWTSecret() {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive")
	}
	if c.CacheMaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
	}
	if c.BulkMaxKeywords < 1 || c.CalendarMaxKeywords < 1 {
		return fmt.Errorf("keyword caps must be at least 1")
	}
	return nil
}
