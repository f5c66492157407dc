// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package models

// Product is a single catalog entry.
//
// Example JSON:
//
//	{
//	  "id": "1",
//	  "name": "Wireless Headphones",
//	  "price": 99.99,
//	  "category": "Electronics",
//	  "brand": "SoundWave",
//	  "rating": 4.5,
//	  "inStock": true,
//	  "tags": ["audio", "wireless"],
//	  "purchaseCount": 12
//	}
type Product struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	InStock     bool     `json:"inStock"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`

	// PurchaseCount is the quantity-weighted number of times the product
	// appears across all orders. Set by enrichment.
	PurchaseCount int `json:"purchaseCount"`

	// CoPurchaseCount is only populated on recommendation results.
	CoPurchaseCount int `json:"coPurchaseCount,omitempty"`
}

// Clone returns a copy of p that shares no mutable state with it.
func (p Product) Clone() Product {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	return p
}

// Availability values accepted by the availability filter.
const (
	AvailabilityInStock    = "in-stock"
	AvailabilityOutOfStock = "out-of-stock"
)

// AvailabilityOf returns the availability label for a product.
func AvailabilityOf(p Product) string {
	if p.InStock {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}
