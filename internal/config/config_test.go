package config

import (
	"os"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("JWT_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8000 {
		t.Errorf("expected default AppPort 8000, got %d", cfg.AppPort)
	}

	if cfg.DatabasePath != "seo_assistant.db" {
		t.Errorf("expected default DatabasePath 'seo_assistant.db', got %s", cfg.DatabasePath)
	}

	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("expected default JWTExpiry 30m, got %s", cfg.JWTExpiry)
	}

	if cfg.CacheTTL != time.Hour {
		t.Errorf("expected default CacheTTL 1h, got %s", cfg.CacheTTL)
	}

	if cfg.CacheMaxEntries != 100 {
		t.Errorf("expected default CacheMaxEntries 100, got %d", cfg.CacheMaxEntries)
	}

	if cfg.BulkMaxKeywords != 50 {
		t.Errorf("expected default BulkMaxKeywords 50, got %d", cfg.BulkMaxKeywords)
	}

	if cfg.CalendarMaxKeywords != 100 {
		t.Errorf("expected default CalendarMaxKeywords 100, got %d", cfg.CalendarMaxKeywords)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}

	if !cfg.UsesDefaultJWTSecret() {
		t.Error("expected UsesDefaultJWTSecret to return true with no JWT_SECRET set")
	}
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Unsetenv("JWT_SECRET")
	defer os.Unsetenv("APP_ENV")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for default JWT secret in production, got nil")
	}

	os.Setenv("JWT_SECRET", "a-real-secret-value")
	defer os.Unsetenv("JWT_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error with JWT_SECRET set, got %v", err)
	}
	if cfg.UsesDefaultJWTSecret() {
		t.Error("expected UsesDefaultJWTSecret to return false")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero jwt expiry", "JWT_EXPIRY", "0s"},
		{"zero cache entries", "CACHE_MAX_ENTRIES", "0"},
		{"zero bulk cap", "BULK_MAX_KEYWORDS", "0"},
		{"zero calendar cap", "CALENDAR_MAX_KEYWORDS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.value)
			defer os.Unsetenv(tt.key)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}

	cfg.AppEnv = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction to return false")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"single", "https://example.com", 1},
		{"multiple with spaces", "https://a.com, https://b.com", 2},
		{"trailing comma", "https://a.com,", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CORSAllowedOrigins: tt.value}
			got := cfg.GetCORSAllowedOrigins()
			if len(got) != tt.want {
				t.Errorf("expected %d origins, got %d (%v)", tt.want, len(got), got)
			}
		})
	}
}
