// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/storefront/internal/logging"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateAPI,
		c.validateStore,
		c.validateCache,
		c.validateBreaker,
		c.validateSecurity,
		c.validateNATS,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	a := c.API
	if a.MaxPageSize < 1 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least 1, got %d", a.MaxPageSize)
	}
	if a.DefaultPageSize < 1 || a.DefaultPageSize > a.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and %d, got %d", a.MaxPageSize, a.DefaultPageSize)
	}
	if a.MaxRecommendationLimit < 1 {
		return fmt.Errorf("API_MAX_RECOMMENDATION_LIMIT must be at least 1, got %d", a.MaxRecommendationLimit)
	}
	if a.DefaultRecommendationLimit < 1 || a.DefaultRecommendationLimit > a.MaxRecommendationLimit {
		return fmt.Errorf("API_DEFAULT_RECOMMENDATION_LIMIT must be between 1 and %d, got %d",
			a.MaxRecommendationLimit, a.DefaultRecommendationLimit)
	}
	return nil
}

func (c *Config) validateStore() error {
	s := c.Store
	switch s.Backend {
	case BackendFile:
		if s.DataDir == "" {
			return fmt.Errorf("STORE_DATA_DIR is required for the file backend")
		}
	case BackendBadger:
		if s.BadgerPath == "" && !s.InMemory {
			return fmt.Errorf("STORE_BADGER_PATH is required unless STORE_IN_MEMORY=true")
		}
	case BackendDuckDB:
		if s.DuckDBPath == "" && !s.InMemory {
			return fmt.Errorf("STORE_DUCKDB_PATH is required unless STORE_IN_MEMORY=true")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of file, badger, duckdb, got %q", s.Backend)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.SnapshotTTL <= 0 {
		return fmt.Errorf("CACHE_SNAPSHOT_TTL must be positive")
	}
	if c.Cache.WarmInterval < 0 {
		return fmt.Errorf("CACHE_WARM_INTERVAL must not be negative")
	}
	if c.HTTPCache.MaxAge < 0 {
		return fmt.Errorf("HTTP_CACHE_MAX_AGE must not be negative")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	b := c.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", b.FailureRatio)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if !s.RateLimitDisabled {
		if s.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
		}
	}
	if c.Server.IsProduction() {
		for _, origin := range s.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	u, err := url.Parse(c.NATS.URL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("NATS_URL is invalid: %q", c.NATS.URL)
	}
	if !strings.HasPrefix(u.Scheme, "nats") && u.Scheme != "tls" {
		return fmt.Errorf("NATS_URL must use the nats:// or tls:// scheme, got %q", u.Scheme)
	}
	if c.NATS.Topic == "" {
		return fmt.Errorf("NATS_TOPIC is required when NATS_ENABLED=true")
	}
	if c.NATS.JetStream && c.NATS.StreamName == "" {
		return fmt.Errorf("NATS_STREAM_NAME is required when NATS_JETSTREAM=true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
