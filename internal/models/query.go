// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package models

// Price bounds applied when a filter leaves them unset.
const (
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 999999.0
)

// FilterParams selects a subset of the catalog. Every field is optional;
// empty lists and nil bounds do not restrict anything.
type FilterParams struct {
	Search       string
	Categories   []string
	Brands       []string
	Tags         []string
	Availability []string
	MinPrice     *float64
	MaxPrice     *float64
}

// PriceRange returns the effective inclusive price bounds.
func (f FilterParams) PriceRange() (minPrice, maxPrice float64) {
	minPrice, maxPrice = DefaultMinPrice, DefaultMaxPrice
	if f.MinPrice != nil {
		minPrice = *f.MinPrice
	}
	if f.MaxPrice != nil {
		maxPrice = *f.MaxPrice
	}
	return minPrice, maxPrice
}

// SortKey names an ordering of the catalog.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

// Valid reports whether k is one of the supported sort keys (or empty).
func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortPriceAsc, SortPriceDesc, SortRating, SortPopular:
		return true
	}
	return false
}

// Facets holds per-value counts over a filtered product set.
type Facets struct {
	Categories   map[string]int `json:"categories"`
	Brands       map[string]int `json:"brands"`
	Tags         map[string]int `json:"tags"`
	Availability map[string]int `json:"availability"`
}

// Pagination describes one page of a result set.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
	HasPrevious bool `json:"hasPrevious"`
}

// CatalogMetadata lists the distinct values available for filtering.
// Total is the size of the filtered result; the value lists span the whole catalog.
type CatalogMetadata struct {
	Total      int      `json:"total"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Tags       []string `json:"tags"`
}
