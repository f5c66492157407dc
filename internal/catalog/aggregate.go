// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import "github.com/tomtom215/storefront/internal/models"

// CalculatePurchaseCounts sums item quantities per product across all orders.
// Products that were never ordered have no entry; IDs that do not exist in
// the catalog are kept and simply never looked up.
func CalculatePurchaseCounts(orders []models.Order) models.Counts {
	counts := make(models.Counts)
	for _, order := range orders {
		for _, item := range order.Items {
			counts[item.ProductID] += item.Quantity
		}
	}
	return counts
}

// EnrichWithCounts returns copies of products with PurchaseCount set from counts.
func EnrichWithCounts(products []models.Product, counts models.Counts) []models.Product {
	enriched := make([]models.Product, len(products))
	for i, p := range products {
		cp := p.Clone()
		cp.PurchaseCount = counts.Get(p.ID)
		enriched[i] = cp
	}
	return enriched
}
