// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/store"
)

// Client-facing messages for load failures. Details go to the log only.
const (
	msgFetchProducts        = "Failed to fetch products"
	msgFetchRecommendations = "Failed to fetch recommendations"
	msgCatalogUnavailable   = "Catalog temporarily unavailable"
)

// writeLoadError maps a snapshot load failure to 503 when the store's
// circuit breaker is open and to 500 otherwise.
func writeLoadError(w http.ResponseWriter, r *http.Request, err error, message string) {
	rw := NewResponseWriter(w, r)
	if errors.Is(err, store.ErrUnavailable) {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Catalog store unavailable")
		rw.ServiceUnavailable(msgCatalogUnavailable)
		return
	}
	logging.Ctx(r.Context()).Error().Str("error", sanitizeLogValue(err.Error())).Msg(message)
	rw.InternalError(message)
}
