// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/storefront/internal/metrics"
)

// unmatchedEndpoint labels requests that matched no route.
const unmatchedEndpoint = "unmatched"

// PrometheusMetrics records request count, duration and in-flight gauge.
func PrometheusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		metrics.RecordAPIRequest(r.Method, routePattern(r), rec.statusCode, time.Since(start))
	})
}

// routePattern is only complete after routing, so call it once the handler
// has returned.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedEndpoint
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedEndpoint
}
