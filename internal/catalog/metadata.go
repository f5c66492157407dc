// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import (
	"sort"

	"github.com/tomtom215/storefront/internal/models"
)

// BuildMetadata collects the distinct, sorted categories, brands and tags of
// the whole catalog. filteredTotal is reported as Total.
func BuildMetadata(products []models.Product, filteredTotal int) models.CatalogMetadata {
	categories := make(map[string]struct{})
	brands := make(map[string]struct{})
	tags := make(map[string]struct{})

	for _, p := range products {
		categories[p.Category] = struct{}{}
		brands[p.Brand] = struct{}{}
		for _, tag := range p.Tags {
			tags[tag] = struct{}{}
		}
	}

	return models.CatalogMetadata{
		Total:      filteredTotal,
		Categories: sortedKeys(categories),
		Brands:     sortedKeys(brands),
		Tags:       sortedKeys(tags),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
