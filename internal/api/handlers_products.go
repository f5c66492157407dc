// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/metrics"
)

// Products handles GET /api/v1/products.
//
// Query parameters: search, categories, brands, tags, availability (comma
// separated), minPrice, maxPrice, sortBy, page, limit. Only an unknown sortBy
// is rejected; every other parameter is clamped or defaulted.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("Method not allowed")
		return
	}

	req := parseProductsRequest(r, h.config.API)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	snapshot, err := h.snapshots.Snapshot(ctx)
	if err != nil {
		writeLoadError(w, r, err, msgFetchProducts)
		return
	}

	start := time.Now()
	result := catalog.Run(snapshot, req.Query())
	metrics.RecordCatalogQuery(time.Since(start), result.Pagination.Total)

	logging.Ctx(r.Context()).Debug().
		Str("search", sanitizeLogValue(req.Search)).
		Str("sort_by", sanitizeLogValue(req.SortBy)).
		Int("page", result.Pagination.Page).
		Int("matched", result.Pagination.Total).
		Msg("Products listed")

	w.Header().Set("Cache-Control", h.listingCacheControl())
	rw.Success(result)
}

// listingCacheControl lets shared caches keep listings for the configured
// max age and serve stale copies while revalidating.
func (h *Handler) listingCacheControl() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", int(h.config.HTTPCache.MaxAge.Seconds()))
}
