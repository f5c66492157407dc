// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import "github.com/tomtom215/storefront/internal/models"

func testProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Product A", Description: "Description A", Price: 100,
			Category: "Electronics", Brand: "BrandX", Rating: 4.5, InStock: true,
			ImageURL: "/images/a.jpg", Tags: []string{"tag1", "tag2"},
		},
		{
			ID: "2", Name: "Product B", Description: "Description B", Price: 200,
			Category: "Clothing", Brand: "BrandY", Rating: 3.5, InStock: false,
			ImageURL: "/images/b.jpg", Tags: []string{"tag2", "tag3"},
		},
		{
			ID: "3", Name: "Product C", Description: "Description C", Price: 50,
			Category: "Electronics", Brand: "BrandX", Rating: 5.0, InStock: true,
			ImageURL: "/images/c.jpg", Tags: []string{"tag1"},
		},
	}
}

func testOrders() []models.Order {
	return []models.Order{
		{
			OrderID: "o1", Date: "2024-01-01", CustomerID: "c1", Total: 400,
			Items: []models.OrderItem{
				{ProductID: "1", Quantity: 2, Price: 100},
				{ProductID: "2", Quantity: 1, Price: 200},
			},
		},
		{
			OrderID: "o2", Date: "2024-01-02", CustomerID: "c2", Total: 100,
			Items: []models.OrderItem{
				{ProductID: "1", Quantity: 1, Price: 100},
			},
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtr(v float64) *float64 { return &v }
