// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/models"
	"github.com/tomtom215/storefront/internal/recommend"
)

func testCatalog() catalog.Snapshot {
	return catalog.Snapshot{
		Products: []models.Product{
			{ID: "1", Name: "Wireless Headphones", Description: "Over-ear", Price: 99.99,
				Category: "Electronics", Brand: "SoundWave", Rating: 4.5, InStock: true,
				Tags: []string{"audio", "wireless"}},
			{ID: "2", Name: "Running Shoes", Description: "Lightweight trainers", Price: 79.5,
				Category: "Sports", Brand: "Stride", Rating: 4.1, InStock: true,
				Tags: []string{"running"}},
			{ID: "3", Name: "Smart Watch", Description: "Fitness tracking", Price: 199,
				Category: "Electronics", Brand: "Pulse", Rating: 4.8, InStock: false,
				Tags: []string{"wearable", "wireless"}},
			{ID: "4", Name: "Yoga Mat", Description: "Non-slip", Price: 25,
				Category: "Sports", Brand: "Stride", Rating: 3.9, InStock: true,
				Tags: []string{"yoga"}},
		},
		Orders: []models.Order{
			{OrderID: "o1", Items: []models.OrderItem{{ProductID: "1", Quantity: 2}, {ProductID: "3", Quantity: 1}}},
			{OrderID: "o2", Items: []models.OrderItem{{ProductID: "1", Quantity: 1}, {ProductID: "4", Quantity: 3}}},
			{OrderID: "o3", Items: []models.OrderItem{{ProductID: "2", Quantity: 1}}},
		},
		LoadedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// fakeSnapshots is an in-memory SnapshotStore.
type fakeSnapshots struct {
	mu            sync.Mutex
	snapshot      catalog.Snapshot
	err           error
	invalidations []string
}

func (f *fakeSnapshots) Snapshot(context.Context) (catalog.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return catalog.Snapshot{}, f.err
	}
	return f.snapshot, nil
}

func (f *fakeSnapshots) Invalidate(source string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidations = append(f.invalidations, source)
}

func (f *fakeSnapshots) sources() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.invalidations...)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	return cfg
}

func newTestHandler(t *testing.T, snaps *fakeSnapshots) *Handler {
	t.Helper()
	engine, err := recommend.NewEngine(snaps, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return NewHandler(snaps, engine, testConfig())
}

// envelope mirrors APIResponse with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func productIDs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
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
