// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import "github.com/tomtom215/storefront/internal/models"

// CalculateFacets counts products per category, brand, tag and availability.
// Each tag occurrence counts once. Both availability keys are always present.
func CalculateFacets(products []models.Product) models.Facets {
	facets := models.Facets{
		Categories: make(map[string]int),
		Brands:     make(map[string]int),
		Tags:       make(map[string]int),
		Availability: map[string]int{
			models.AvailabilityInStock:    0,
			models.AvailabilityOutOfStock: 0,
		},
	}

	for _, p := range products {
		facets.Categories[p.Category]++
		facets.Brands[p.Brand]++
		for _, tag := range p.Tags {
			facets.Tags[tag]++
		}
		facets.Availability[models.AvailabilityOf(p)]++
	}

	return facets
}
