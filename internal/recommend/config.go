// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package recommend

import "fmt"

// Config controls result sizing.
type Config struct {
	// DefaultLimit applies when a request leaves Limit at zero.
	DefaultLimit int

	// MaxLimit is the largest Limit honored. Larger values are clamped.
	MaxLimit int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: DefaultLimit,
		MaxLimit:     20,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit (%d) must be >= default limit (%d)", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

// clampLimit resolves a requested limit against the config.
func (c *Config) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return c.DefaultLimit
	case limit > c.MaxLimit:
		return c.MaxLimit
	default:
		return limit
	}
}
