// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package catalog implements the product query pipeline.

Every function in this package is pure: inputs are never modified and each
stage returns a fresh slice. This lets the store layer share one loaded
snapshot across concurrent requests without locking.

# Pipeline

Run composes the stages in a fixed order:

	counts   := CalculatePurchaseCounts(snapshot.Orders)
	enriched := EnrichWithCounts(snapshot.Products, counts)
	filtered := FilterProducts(enriched, q.Filters)
	sorted   := SortProducts(filtered, q.SortBy)
	facets   := CalculateFacets(sorted)     // before pagination
	page, p  := Paginate(sorted, q.Page, q.Limit)

Metadata value lists (categories, brands, tags) are computed over the raw,
unfiltered catalog so clients can render every filter option.

# Matching Rules

  - Search is a case-insensitive substring match on name, description or any tag.
  - Categories and brands match exactly.
  - Tags match case-insensitively; at least one requested tag must be present.
  - Availability accepts "in-stock" and "out-of-stock".
  - Price bounds are inclusive and default to [0, 999999].

Facet keys use the exact stored strings, so "Audio" and "audio" are counted
separately even though the tag filter treats them as equal.
*/
package catalog
