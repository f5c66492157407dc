// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import "github.com/tomtom215/storefront/internal/models"

// Paginate returns the 1-based page of products and its descriptor.
//
// Pages past the end are empty but still report the true total. The caller is
// expected to pass page >= 1 and limit >= 1; a non-positive limit yields an
// empty page with TotalPages 0 instead of dividing by zero.
func Paginate(products []models.Product, page, limit int) ([]models.Product, models.Pagination) {
	total := len(products)
	p := models.Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		HasPrevious: page > 1,
	}
	if limit <= 0 {
		return []models.Product{}, p
	}

	p.TotalPages = (total + limit - 1) / limit

	// Checked before multiplying so a huge page cannot wrap into range.
	if page < 1 || page > p.TotalPages {
		return []models.Product{}, p
	}

	start := (page - 1) * limit
	end := start + limit
	p.HasMore = end < total

	start = clamp(start, 0, total)
	end = clamp(end, start, total)

	out := make([]models.Product, end-start)
	copy(out, products[start:end])
	return out, p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
