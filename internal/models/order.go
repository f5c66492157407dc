// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package models

// Order is a historical purchase. Date, Total and item prices are carried
// through from the data files but nothing in the query path reads them.
type Order struct {
	OrderID    string      `json:"orderId" validate:"required"`
	Date       string      `json:"date"`
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items" validate:"dive"`
	Total      float64     `json:"total"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Price     float64 `json:"price"`
}

// Contains reports whether any item in the order references productID.
func (o Order) Contains(productID string) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Counts maps product IDs to a quantity-weighted count.
// Missing keys read as zero through Get.
type Counts map[string]int

// Get returns the count for id, or 0 if id has never been counted.
func (c Counts) Get(id string) int {
	return c[id]
}
