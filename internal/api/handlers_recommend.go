// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/storefront/internal/metrics"
	"github.com/tomtom215/storefront/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations?productId=&limit=
// Returns products most often bought together with productId.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("Method not allowed")
		return
	}

	req := parseRecommendationsRequest(r, h.engine.Config().MaxLimit)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, recommend.Request{
		ProductID: req.ProductID,
		Limit:     req.Limit,
	})
	if err != nil {
		writeLoadError(w, r, err, msgFetchRecommendations)
		return
	}
	metrics.RecordRecommendation(time.Since(start), resp.Total)

	rw.Success(resp)
}
