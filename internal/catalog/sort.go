// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import (
	"sort"

	"github.com/tomtom215/storefront/internal/models"
)

// SortProducts returns a stably sorted copy of products.
// Equal keys keep their input order. An unknown or empty key returns the
// copy unchanged; it is not an error here, the API layer rejects bad keys.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	var less func(i, j int) bool
	switch key {
	case models.SortPriceAsc:
		less = func(i, j int) bool { return sorted[i].Price < sorted[j].Price }
	case models.SortPriceDesc:
		less = func(i, j int) bool { return sorted[i].Price > sorted[j].Price }
	case models.SortRating:
		less = func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating }
	case models.SortPopular:
		less = func(i, j int) bool { return sorted[i].PurchaseCount > sorted[j].PurchaseCount }
	default:
		return sorted
	}

	sort.SliceStable(sorted, less)
	return sorted
}
