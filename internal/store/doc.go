// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package store loads the product catalog and order history.

# Backends

Three Repository implementations are provided:

  - FileRepository reads products.json and orders.json from a directory.
  - BadgerRepository keeps records in an embedded BadgerDB.
  - DuckDBRepository keeps records in DuckDB tables.

Open selects one from config.StoreConfig and, for the persistent backends,
imports the JSON files in SeedDir on startup.

# Read Path

	repo, _ := store.Open(ctx, cfg.Store)
	guarded := store.NewBreakerRepository(repo, cfg.Breaker)
	snapshots := store.NewSnapshotProvider(guarded, cache.New[catalog.Snapshot](cfg.Cache.SnapshotTTL), nil)
	snap, err := snapshots.Snapshot(ctx)

BreakerRepository fails fast with ErrUnavailable once the backend keeps
failing. SnapshotProvider loads products and orders together, caches the
pair for the configured TTL and collapses concurrent misses into one load.
Invalidate drops the cached pair; loads that were already running when it was
called do not repopulate the cache.

Records keep their file order in every backend, so the default "no sort"
listing order is the same regardless of backend.
*/
package store
