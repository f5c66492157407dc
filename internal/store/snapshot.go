// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/storefront/internal/cache"
	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/metrics"
	"github.com/tomtom215/storefront/internal/models"
)

const (
	snapshotKey       = "catalog:snapshot"
	snapshotCacheName = "snapshot"
)

// SnapshotProvider serves products and orders as one consistent
// catalog.Snapshot, cached for the cache's TTL.
type SnapshotProvider struct {
	repo  Repository
	cache cache.Cacher[catalog.Snapshot]
	clock cache.Clock
	group singleflight.Group

	// generation is bumped by Invalidate; a load only populates the cache
	// when no invalidation happened while it ran.
	generation atomic.Uint64

	// mu orders the generation check plus Set in load against the bump plus
	// Delete in Invalidate.
	mu sync.Mutex
}

// NewSnapshotProvider caches snapshots of repo in c. A nil clock uses the
// wall clock for LoadedAt.
func NewSnapshotProvider(repo Repository, c cache.Cacher[catalog.Snapshot], clock cache.Clock) *SnapshotProvider {
	if clock == nil {
		clock = cache.RealClock{}
	}
	return &SnapshotProvider{repo: repo, cache: c, clock: clock}
}

// Snapshot returns the cached snapshot or loads a fresh one. Concurrent
// callers that miss share a single load.
func (p *SnapshotProvider) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	if snap, ok := p.cache.Get(snapshotKey); ok {
		metrics.RecordCacheLookup(snapshotCacheName, true)
		return snap, nil
	}
	metrics.RecordCacheLookup(snapshotCacheName, false)

	// The shared load outlives any single caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan(snapshotKey, func() (interface{}, error) {
		return p.load(loadCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return catalog.Snapshot{}, res.Err
		}
		return res.Val.(catalog.Snapshot), nil
	case <-ctx.Done():
		return catalog.Snapshot{}, ctx.Err()
	}
}

func (p *SnapshotProvider) load(ctx context.Context) (catalog.Snapshot, error) {
	gen := p.generation.Load()

	var (
		products []models.Product
		orders   []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = p.repo.LoadProducts(gctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		orders, err = p.repo.LoadOrders(gctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Error().Err(err).Str("backend", backendName(p.repo)).Msg("Catalog snapshot load failed")
		return catalog.Snapshot{}, err
	}

	snap := catalog.Snapshot{Products: products, Orders: orders, LoadedAt: p.clock.Now()}
	p.mu.Lock()
	if p.generation.Load() == gen {
		p.cache.Set(snapshotKey, snap)
	}
	p.mu.Unlock()

	logging.Debug().
		Str("backend", backendName(p.repo)).
		Int("products", len(products)).
		Int("orders", len(orders)).
		Msg("Catalog snapshot loaded")
	return snap, nil
}

// Invalidate drops the cached snapshot. source labels the metric, e.g.
// "api" or "nats".
func (p *SnapshotProvider) Invalidate(source string) {
	p.mu.Lock()
	p.generation.Add(1)
	p.cache.Delete(snapshotKey)
	p.mu.Unlock()
	p.group.Forget(snapshotKey)
	metrics.CacheInvalidations.WithLabelValues(snapshotCacheName, source).Inc()
	logging.Info().Str("source", source).Msg("Catalog snapshot invalidated")
}

// Backend reports the underlying repository's backend name.
func (p *SnapshotProvider) Backend() string { return backendName(p.repo) }
