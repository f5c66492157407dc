// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/storefront/internal/catalog"
)

// SnapshotLoader is satisfied by store.SnapshotProvider.
type SnapshotLoader interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

// WarmServiceConfig holds configuration for the snapshot warmer.
type WarmServiceConfig struct {
	// Interval between refreshes. Zero warms once at startup and then idles.
	Interval time.Duration

	// LoadTimeout bounds a single load. Default: 30s
	LoadTimeout time.Duration
}

// WarmService keeps the catalog snapshot cache populated so requests rarely
// pay for a store load. Failures are logged and retried on the next tick;
// they never stop the service.
type WarmService struct {
	loader SnapshotLoader
	config WarmServiceConfig
	logger zerolog.Logger
	name   string
}

// NewWarmService creates a snapshot warmer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWarmService(loader SnapshotLoader, cfg WarmServiceConfig, logger zerolog.Logger) *WarmService {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 30 * time.Second
	}
	return &WarmService{
		loader: loader,
		config: cfg,
		logger: logger.With().Str("service", "snapshot-warmer").Logger(),
		name:   "snapshot-warmer",
	}
}

// Serve implements suture.Service.
func (s *WarmService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("snapshot warmer starting")

	if err := s.warm(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("initial snapshot load failed (will retry on schedule)")
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot warmer shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.warm(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled snapshot load failed")
			}
		}
	}
}

func (s *WarmService) warm(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := s.loader.Snapshot(loadCtx)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Int("products", len(snapshot.Products)).
		Int("orders", len(snapshot.Orders)).
		Dur("duration", time.Since(start)).
		Msg("snapshot warm")
	return nil
}

// String returns the service name for logging.
func (s *WarmService) String() string {
	return s.name
}
