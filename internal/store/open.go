// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"fmt"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/validation"
)

// Open builds the repository selected by cfg.Backend. For the badger and
// duckdb backends a non-empty SeedDir is imported before Open returns.
func Open(ctx context.Context, cfg config.StoreConfig) (Repository, error) {
	var (
		repo Repository
		err  error
	)
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileRepository(cfg.DataDir), nil
	case config.BackendBadger:
		repo, err = OpenBadger(cfg.BadgerPath, cfg.InMemory)
	case config.BackendDuckDB:
		repo, err = OpenDuckDB(ctx, cfg.DuckDBPath, cfg.InMemory)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.SeedDir != "" {
		if err := Seed(ctx, repo, cfg.SeedDir); err != nil {
			closeQuietly(repo)
			return nil, err
		}
	}
	return repo, nil
}

// Seed validates the JSON catalog in dir and imports it into repo, replacing
// whatever repo held.
func Seed(ctx context.Context, repo Repository, dir string) error {
	imp, ok := repo.(Importer)
	if !ok {
		return fmt.Errorf("%s backend does not support seeding", backendName(repo))
	}

	src := NewFileRepository(dir)
	products, err := src.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	orders, err := src.LoadOrders(ctx)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	if err := validation.ValidateSlice(products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := validation.ValidateSlice(orders); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	if err := imp.Import(ctx, products, orders); err != nil {
		return fmt.Errorf("seed %s: %w", backendName(repo), err)
	}

	logging.Info().
		Str("backend", backendName(repo)).
		Str("seed_dir", dir).
		Int("products", len(products)).
		Int("orders", len(orders)).
		Msg("Catalog seeded")
	return nil
}
