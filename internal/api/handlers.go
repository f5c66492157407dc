// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/recommend"
)

// requestTimeout bounds snapshot loads triggered by a request.
const requestTimeout = 10 * time.Second

// SnapshotStore is the read side of the catalog: cached snapshots plus
// explicit invalidation. It is implemented by store.SnapshotProvider.
type SnapshotStore interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
	Invalidate(source string)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: parameter parsing and validation helpers
//   - handlers_products.go: product listing
//   - handlers_recommend.go: co-purchase recommendations
//   - handlers_health.go: liveness and readiness probes
//   - handlers_admin.go: cache invalidation
type Handler struct {
	snapshots SnapshotStore
	engine    *recommend.Engine
	config    *config.Config
	startTime time.Time

	// publisher broadcasts admin invalidations to peer instances (optional)
	publisher message.Publisher
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(provider, engine, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(snapshots SnapshotStore, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		snapshots: snapshots,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}

// SetEventPublisher sets the optional publisher used to broadcast cache
// invalidations. Passing nil disables broadcasting.
//
// Should be called once during startup.
func (h *Handler) SetEventPublisher(publisher message.Publisher) {
	h.publisher = publisher
}
