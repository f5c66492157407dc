// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/storefront/internal/logging"
)

// RequestLogger logs one line per request. Requests slower than
// slowThreshold are logged at warn level; a zero threshold disables that.
func RequestLogger(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case slowThreshold > 0 && duration > slowThreshold:
				event = logger.Warn().Dur("threshold", slowThreshold)
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", rec.statusCode).
				Int("bytes", rec.bytes).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("HTTP request")
		})
	}
}
