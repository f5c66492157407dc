// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package middleware provides the HTTP middleware shared by every API route.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
into chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)         // X-Request-ID + logging context
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(middleware.PrometheusMetrics) // api_requests_total et al.
	r.Use(middleware.Compression)       // gzip when the client accepts it

PrometheusMetrics labels requests with the matched chi route pattern rather
than the raw path, so query strings and unknown paths do not create new
series. RequestLogger warns when a request exceeds its slow threshold.
*/
package middleware
