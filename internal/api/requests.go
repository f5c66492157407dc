// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"math"
	"net/http"
	"strings"

	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/models"
)

// ProductsRequest is the normalized query of GET /api/v1/products.
// Only SortBy can fail validation; every other field is clamped.
type ProductsRequest struct {
	Search       string
	Categories   []string
	Brands       []string
	Tags         []string
	Availability []string
	MinPrice     float64
	MaxPrice     float64
	SortBy       string `json:"sortBy" validate:"sortkey"`
	Page         int
	Limit        int
}

// RecommendationsRequest is the query of GET /api/v1/recommendations.
type RecommendationsRequest struct {
	ProductID string `json:"productId" validate:"required,max=128"`
	Limit     int
}

// parseProductsRequest reads and clamps listing parameters.
func parseProductsRequest(r *http.Request, cfg config.APIConfig) ProductsRequest {
	q := r.URL.Query()

	minPrice := math.Max(0, parseFloatParam(q.Get("minPrice"), models.DefaultMinPrice))
	maxPrice := math.Max(minPrice, parseFloatParam(q.Get("maxPrice"), models.DefaultMaxPrice))

	// Zero means "not given", like an absent parameter.
	limit := parseIntParam(q.Get("limit"), cfg.DefaultPageSize)
	if limit == 0 {
		limit = cfg.DefaultPageSize
	}

	return ProductsRequest{
		Search:       strings.TrimSpace(q.Get("search")),
		Categories:   parseCommaSeparated(q.Get("categories")),
		Brands:       parseCommaSeparated(q.Get("brands")),
		Tags:         parseCommaSeparated(q.Get("tags")),
		Availability: parseCommaSeparated(q.Get("availability")),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		SortBy:       q.Get("sortBy"),
		Page:         max(1, parseIntParam(q.Get("page"), 1)),
		Limit:        clampInt(limit, 1, cfg.MaxPageSize),
	}
}

// Query converts the request for catalog.Run.
func (p ProductsRequest) Query() catalog.Query {
	minPrice, maxPrice := p.MinPrice, p.MaxPrice
	return catalog.Query{
		Filters: models.FilterParams{
			Search:       p.Search,
			Categories:   p.Categories,
			Brands:       p.Brands,
			Tags:         p.Tags,
			Availability: p.Availability,
			MinPrice:     &minPrice,
			MaxPrice:     &maxPrice,
		},
		SortBy: models.SortKey(p.SortBy),
		Page:   p.Page,
		Limit:  p.Limit,
	}
}

// parseRecommendationsRequest reads the target and limit. A missing,
// unparseable or zero limit stays 0 so the engine applies its default;
// anything else is clamped to [1, maxLimit].
func parseRecommendationsRequest(r *http.Request, maxLimit int) RecommendationsRequest {
	q := r.URL.Query()
	limit := parseIntParam(q.Get("limit"), 0)
	if limit != 0 {
		limit = clampInt(limit, 1, maxLimit)
	}
	return RecommendationsRequest{
		ProductID: strings.TrimSpace(q.Get("productId")),
		Limit:     limit,
	}
}
