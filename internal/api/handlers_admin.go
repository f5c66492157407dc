// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"net/http"

	"github.com/tomtom215/storefront/internal/events"
	"github.com/tomtom215/storefront/internal/logging"
)

// invalidationSource labels invalidations requested over HTTP.
const invalidationSource = "api"

// InvalidateCache handles POST /api/v1/admin/cache/invalidate.
//
// The local snapshot is dropped immediately. With a publisher configured a
// catalog.updated event is also broadcast so peer instances reload; a publish
// failure is logged and reported in the response but does not fail it.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodPost {
		rw.MethodNotAllowed("Method not allowed")
		return
	}

	h.snapshots.Invalidate(invalidationSource)

	broadcast := false
	if h.publisher != nil {
		topic := h.config.NATS.Topic
		if err := events.PublishCatalogUpdated(h.publisher, topic, invalidationSource); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("topic", topic).Msg("Failed to broadcast cache invalidation")
		} else {
			broadcast = true
		}
	}

	logging.Ctx(r.Context()).Info().Bool("broadcast", broadcast).Msg("Catalog cache invalidated")

	rw.Success(map[string]interface{}{
		"invalidated": true,
		"broadcast":   broadcast,
	})
}
