// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/storefront/internal/catalog"
)

// ErrMissingProductID is returned when a request has no target product.
var ErrMissingProductID = errors.New("productId is required")

// SnapshotSource supplies the catalog snapshot recommendations are computed from.
// It is implemented by store.SnapshotProvider.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

// Engine serves co-purchase recommendations. It is safe for concurrent use;
// all state lives in the snapshots it reads.
type Engine struct {
	source SnapshotSource
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(source SnapshotSource, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if source == nil {
		return nil, errors.New("snapshot source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		source: source,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend returns co-purchase recommendations for req.ProductID.
// The only errors are a missing product ID and snapshot load failures.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if req.ProductID == "" {
		return nil, ErrMissingProductID
	}

	start := time.Now()
	limit := e.config.clampLimit(req.Limit)

	snapshot, err := e.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}

	recs := CoPurchase(snapshot.Orders, snapshot.Products, req.ProductID, limit)

	resp := &Response{
		ProductID:       req.ProductID,
		Recommendations: recs,
		Total:           len(recs),
		GeneratedAt:     time.Now(),
		LatencyMS:       time.Since(start).Milliseconds(),
	}

	e.logger.Debug().
		Str("product_id", req.ProductID).
		Int("limit", limit).
		Int("results", resp.Total).
		Int64("latency_ms", resp.LatencyMS).
		Msg("recommendations generated")

	return resp, nil
}
