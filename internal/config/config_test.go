// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv isolates a test from CONFIG_PATH and every mapped variable.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, "")
	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 12 || cfg.API.MaxPageSize != 50 {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.API.DefaultRecommendationLimit != 4 {
		t.Errorf("DefaultRecommendationLimit = %d, want 4", cfg.API.DefaultRecommendationLimit)
	}
	if cfg.Cache.SnapshotTTL != time.Minute {
		t.Errorf("SnapshotTTL = %v, want 1m", cfg.Cache.SnapshotTTL)
	}
	if cfg.HTTPCache.MaxAge != 300*time.Second {
		t.Errorf("HTTPCache.MaxAge = %v, want 300s", cfg.HTTPCache.MaxAge)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Store.Backend = %q, want file", cfg.Store.Backend)
	}
	if cfg.NATS.Enabled {
		t.Error("NATS should be disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORE_BACKEND", "badger")
	t.Setenv("STORE_IN_MEMORY", "true")
	t.Setenv("CACHE_SNAPSHOT_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendBadger || !cfg.Store.InMemory {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Cache.SnapshotTTL != 30*time.Second {
		t.Errorf("SnapshotTTL = %v, want 30s", cfg.Cache.SnapshotTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlDoc := `
server:
  port: 9000
api:
  max_page_size: 100
  default_page_size: 24
store:
  backend: duckdb
  duckdb_path: /tmp/catalog.duckdb
security:
  cors_origins:
    - https://shop.example
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.API.MaxPageSize != 100 || cfg.API.DefaultPageSize != 24 {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.Store.Backend != BackendDuckDB || cfg.Store.DuckDBPath != "/tmp/catalog.duckdb" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://shop.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := LoadFile("")
	if err == nil || !strings.Contains(err.Error(), "STORE_BACKEND") {
		t.Errorf("err = %v, want STORE_BACKEND validation error", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"default page over max", func(c *Config) { c.API.DefaultPageSize = 60 }, "API_DEFAULT_PAGE_SIZE"},
		{"zero max page", func(c *Config) { c.API.MaxPageSize = 0 }, "API_MAX_PAGE_SIZE"},
		{"rec default over max", func(c *Config) { c.API.DefaultRecommendationLimit = 30 }, "API_DEFAULT_RECOMMENDATION_LIMIT"},
		{"badger without path", func(c *Config) { c.Store.Backend = BackendBadger; c.Store.BadgerPath = "" }, "STORE_BADGER_PATH"},
		{"zero ttl", func(c *Config) { c.Cache.SnapshotTTL = 0 }, "CACHE_SNAPSHOT_TTL"},
		{"negative warm interval", func(c *Config) { c.Cache.WarmInterval = -time.Second }, "CACHE_WARM_INTERVAL"},
		{"failure ratio", func(c *Config) { c.Breaker.FailureRatio = 1.5 }, "BREAKER_FAILURE_RATIO"},
		{"rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"nats bad url", func(c *Config) { c.NATS.Enabled = true; c.NATS.URL = "http://x:1" }, "NATS_URL"},
		{"jetstream without stream", func(c *Config) { c.NATS.Enabled = true; c.NATS.JetStream = true }, "NATS_STREAM_NAME"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRateLimitDisabledSkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 3000}
	if got := s.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("STORE_BACKEND"); got != "store.backend" {
		t.Errorf("STORE_BACKEND -> %q", got)
	}
	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("PATH -> %q, want empty", got)
	}
}
