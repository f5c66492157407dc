// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/storefront/config.yaml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// Default returns the built-in defaults without reading a file or the
// environment. Tests and embedders start from it.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			DefaultPageSize:            12,
			MaxPageSize:                50,
			DefaultRecommendationLimit: 4,
			MaxRecommendationLimit:     20,
		},
		Store: StoreConfig{
			Backend:    BackendFile,
			DataDir:    "data",
			BadgerPath: "data/badger",
			DuckDBPath: "data/catalog.duckdb",
		},
		Cache: CacheConfig{
			SnapshotTTL:     time.Minute,
			CleanupInterval: 5 * time.Minute,
			WarmInterval:    45 * time.Second,
		},
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			FailureRatio: 0.6,
			MinRequests:  10,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		HTTPCache: HTTPCacheConfig{
			MaxAge: 300 * time.Second,
		},
		NATS: NATSConfig{
			Enabled: false,
			URL:     "nats://127.0.0.1:4222",
			Topic:   "catalog.updated",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the config file found by
// findConfigFile, and the environment, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path ("" for none).
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":          "server.host",
	"http_port":          "server.port",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"shutdown_timeout":   "server.shutdown_timeout",
	"environment":        "server.environment",

	"api_default_page_size":            "api.default_page_size",
	"api_max_page_size":                "api.max_page_size",
	"api_default_recommendation_limit": "api.default_recommendation_limit",
	"api_max_recommendation_limit":     "api.max_recommendation_limit",

	"store_backend":     "store.backend",
	"store_data_dir":    "store.data_dir",
	"store_badger_path": "store.badger_path",
	"store_duckdb_path": "store.duckdb_path",
	"store_seed_dir":    "store.seed_dir",
	"store_in_memory":   "store.in_memory",

	"cache_snapshot_ttl":     "cache.snapshot_ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",
	"cache_warm_interval":    "cache.warm_interval",

	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_failure_ratio": "breaker.failure_ratio",
	"breaker_min_requests":  "breaker.min_requests",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"http_cache_max_age": "http_cache.max_age",

	"nats_enabled":     "nats.enabled",
	"nats_url":         "nats.url",
	"nats_topic":       "nats.topic",
	"nats_jetstream":   "nats.jetstream",
	"nats_stream_name": "nats.stream_name",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
