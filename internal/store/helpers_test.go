// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/storefront/internal/models"
)

var errBackendDown = errors.New("backend down")

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p3", Name: "Desk Lamp", Description: "LED lamp", Price: 35, Category: "Home",
			Brand: "Lumo", Rating: 4.1, InStock: true, ImageURL: "/img/p3.jpg", Tags: []string{"lighting", "desk"}},
		{ID: "p1", Name: "Headphones", Description: "Over-ear", Price: 120, Category: "Electronics",
			Brand: "Sonic", Rating: 4.6, InStock: false, ImageURL: "/img/p1.jpg", Tags: []string{"audio"}},
		{ID: "p2", Name: "Notebook", Price: 4.5, Category: "Office",
			Brand: "Paperly", Rating: 3.9, InStock: true, Tags: []string{}},
	}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{OrderID: "o2", Date: "2024-02-01", CustomerID: "c1", Total: 155,
			Items: []models.OrderItem{
				{ProductID: "p3", Quantity: 1, Price: 35},
				{ProductID: "p1", Quantity: 1, Price: 120},
			}},
		{OrderID: "o1", Date: "2024-02-03", CustomerID: "c2", Total: 9,
			Items: []models.OrderItem{{ProductID: "p2", Quantity: 2, Price: 4.5}}},
		{OrderID: "o3", Date: "2024-02-04", CustomerID: "c3", Total: 0, Items: []models.OrderItem{}},
	}
}

// fakeRepo counts loads and can fail or block on demand.
type fakeRepo struct {
	name     string
	products []models.Product
	orders   []models.Order

	productLoads atomic.Int32
	orderLoads   atomic.Int32
	fail         atomic.Bool

	started chan struct{} // receives once per product load when non-nil
	release chan struct{} // product loads block until closed when non-nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: sampleProducts(), orders: sampleOrders()}
}

func (f *fakeRepo) Backend() string {
	if f.name != "" {
		return f.name
	}
	return "fake"
}

func (f *fakeRepo) LoadProducts(ctx context.Context) ([]models.Product, error) {
	f.productLoads.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.fail.Load() {
		return nil, errBackendDown
	}
	return f.products, nil
}

func (f *fakeRepo) LoadOrders(context.Context) ([]models.Order, error) {
	f.orderLoads.Add(1)
	if f.fail.Load() {
		return nil, errBackendDown
	}
	return f.orders, nil
}

func (f *fakeRepo) Close() error { return nil }

func productIDs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func orderIDs(orders []models.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.OrderID
	}
	return out
}

func sameStrings(a, b []string) bool {
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

// assertRoundTrip checks that repo returns the sample catalog unchanged and in order.
func assertRoundTrip(t testing.TB, repo Repository) {
	t.Helper()
	ctx := context.Background()

	products, err := repo.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if got, want := productIDs(products), productIDs(sampleProducts()); !sameStrings(got, want) {
		t.Errorf("product order = %v, want %v", got, want)
	}
	want := sampleProducts()
	for i := range want {
		if i >= len(products) {
			break
		}
		got := products[i]
		if got.Name != want[i].Name || got.Price != want[i].Price || got.InStock != want[i].InStock ||
			got.Rating != want[i].Rating || got.Category != want[i].Category || got.Brand != want[i].Brand ||
			!sameStrings(got.Tags, want[i].Tags) {
			t.Errorf("product %d = %+v, want %+v", i, got, want[i])
		}
	}

	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		t.Fatalf("LoadOrders: %v", err)
	}
	if got, want := orderIDs(orders), orderIDs(sampleOrders()); !sameStrings(got, want) {
		t.Errorf("order order = %v, want %v", got, want)
	}
	if len(orders) == 3 {
		if n := len(orders[0].Items); n != 2 {
			t.Errorf("first order items = %d, want 2", n)
		} else if orders[0].Items[1].ProductID != "p1" || orders[0].Items[1].Quantity != 1 {
			t.Errorf("first order second item = %+v", orders[0].Items[1])
		}
		if n := len(orders[2].Items); n != 0 {
			t.Errorf("empty order items = %d, want 0", n)
		}
	}
}
