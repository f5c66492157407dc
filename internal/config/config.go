// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

// Package config loads service configuration from defaults, an optional YAML
// file and environment variables (in that order of precedence, lowest first).
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("invalid configuration")
//	}
//
// Environment variables use flat names (HTTP_PORT, STORE_BACKEND, LOG_LEVEL);
// see envMappings for the full list. Unknown variables are ignored.
package config

import "time"

// Store backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendDuckDB = "duckdb"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Store     StoreConfig     `koanf:"store"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Security  SecurityConfig  `koanf:"security"`
	HTTPCache HTTPCacheConfig `koanf:"http_cache"`
	NATS      NATSConfig      `koanf:"nats"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// APIConfig holds query sizing limits.
type APIConfig struct {
	DefaultPageSize            int `koanf:"default_page_size"`
	MaxPageSize                int `koanf:"max_page_size"`
	DefaultRecommendationLimit int `koanf:"default_recommendation_limit"`
	MaxRecommendationLimit     int `koanf:"max_recommendation_limit"`
}

// StoreConfig selects and configures the catalog backend.
//
// The file backend reads products.json and orders.json from DataDir. The
// badger and duckdb backends persist the catalog; when SeedDir is set they
// import its JSON files on startup.
type StoreConfig struct {
	Backend    string `koanf:"backend"`
	DataDir    string `koanf:"data_dir"`
	BadgerPath string `koanf:"badger_path"`
	DuckDBPath string `koanf:"duckdb_path"`
	SeedDir    string `koanf:"seed_dir"`
	InMemory   bool   `koanf:"in_memory"`
}

// CacheConfig controls the catalog snapshot cache.
//
// WarmInterval refreshes the snapshot in the background so requests rarely
// pay for a load. Zero warms once at startup only.
type CacheConfig struct {
	SnapshotTTL     time.Duration `koanf:"snapshot_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	WarmInterval    time.Duration `koanf:"warm_interval"`
}

// BreakerConfig tunes the circuit breaker around store loads.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	FailureRatio float64       `koanf:"failure_ratio"`
	MinRequests  uint32        `koanf:"min_requests"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// HTTPCacheConfig controls the Cache-Control header on product listings.
type HTTPCacheConfig struct {
	MaxAge time.Duration `koanf:"max_age"`
}

// NATSConfig configures the catalog invalidation subscriber.
//
// Every instance must see every invalidation, so subscriptions never use a
// queue group. With JetStream enabled the subscriber binds an ephemeral
// consumer to StreamName; otherwise it uses core NATS.
type NATSConfig struct {
	Enabled    bool   `koanf:"enabled"`
	URL        string `koanf:"url"`
	Topic      string `koanf:"topic"`
	JetStream  bool   `koanf:"jetstream"`
	StreamName string `koanf:"stream_name"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether Environment is "production".
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
