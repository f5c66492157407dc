// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package recommend

import (
	"time"

	"github.com/tomtom215/storefront/internal/models"
)

// Request asks for recommendations related to one product.
type Request struct {
	// ProductID is the target product. Required.
	ProductID string

	// Limit caps the number of results. Zero selects Config.DefaultLimit.
	Limit int
}

// Response carries ranked recommendations for a product.
type Response struct {
	ProductID       string           `json:"productId"`
	Recommendations []models.Product `json:"recommendations"`
	Total           int              `json:"total"`

	// GeneratedAt and LatencyMS are for logs; not part of the JSON body.
	GeneratedAt time.Time `json:"-"`
	LatencyMS   int64     `json:"-"`
}

// ScoredItem is a co-purchased product with its accumulated quantity.
type ScoredItem struct {
	ProductID string
	Score     int

	// firstSeen is the scan position of the first occurrence; it breaks ties.
	firstSeen int
}
