// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/storefront/internal/logging"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("Method not allowed")
		return
	}

	rw.Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if a catalog snapshot can be served, 503 otherwise.
// A cached snapshot counts, so readiness does not hammer the store.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("Method not allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	snapshot, err := h.snapshots.Snapshot(ctx)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog not ready",
			map[string]interface{}{
				"ready_to_serve": false,
				"uptime":         time.Since(h.startTime).Seconds(),
			})
		return
	}

	rw.Success(map[string]interface{}{
		"ready_to_serve": true,
		"products":       len(snapshot.Products),
		"orders":         len(snapshot.Orders),
		"loaded_at":      snapshot.LoadedAt,
		"backend":        h.config.Store.Backend,
		"uptime":         time.Since(h.startTime).Seconds(),
	})
}
