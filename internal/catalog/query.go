// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import (
	"time"

	"github.com/tomtom215/storefront/internal/models"
)

// Snapshot pairs a product list with the order history it was loaded with.
// A query always reads both halves from the same snapshot.
type Snapshot struct {
	Products []models.Product
	Orders   []models.Order
	LoadedAt time.Time
}

// Query is a fully normalized product listing request.
type Query struct {
	Filters models.FilterParams
	SortBy  models.SortKey
	Page    int
	Limit   int
}

// Result is the outcome of Run.
type Result struct {
	Products   []models.Product       `json:"products"`
	Pagination models.Pagination      `json:"pagination"`
	Metadata   models.CatalogMetadata `json:"metadata"`
	Facets     models.Facets          `json:"facets"`
}

// Run executes the full listing pipeline against snapshot.
// Facets are computed over the filtered set before pagination.
func Run(snapshot Snapshot, q Query) Result {
	counts := CalculatePurchaseCounts(snapshot.Orders)
	enriched := EnrichWithCounts(snapshot.Products, counts)
	filtered := FilterProducts(enriched, q.Filters)
	sorted := SortProducts(filtered, q.SortBy)
	facets := CalculateFacets(sorted)
	page, pagination := Paginate(sorted, q.Page, q.Limit)

	return Result{
		Products:   page,
		Pagination: pagination,
		Metadata:   BuildMetadata(snapshot.Products, len(filtered)),
		Facets:     facets,
	}
}
