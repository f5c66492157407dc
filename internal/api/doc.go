// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package api exposes the catalog over HTTP using the chi router.

# Routes

	GET  /api/v1/products               filtered, sorted, paginated listing with facets
	GET  /api/v1/recommendations        co-purchase recommendations for one product
	GET  /api/v1/health/live            liveness probe
	GET  /api/v1/health/ready           readiness probe (loads a catalog snapshot)
	POST /api/v1/admin/cache/invalidate drop the cached catalog snapshot
	GET  /metrics                       Prometheus exposition

Every JSON response uses the APIResponse envelope:

	{"success": true,  "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "Invalid sort option"}}

# Request Parsing

Query parameters never reach the catalog pipeline unnormalized. List
parameters are comma-separated with empty parts dropped. Unparseable
numbers fall back to their defaults, page is clamped to at least 1, limit
to [1, max_page_size], minPrice to at least 0 and maxPrice to at least
minPrice. An unknown sortBy is the one listing input that is rejected
outright (400).

# Caching

Product listings carry Cache-Control: public, s-maxage=<http_cache.max_age>,
stale-while-revalidate. The catalog snapshot behind both read endpoints is
cached in-process by store.SnapshotProvider.
*/
package api
