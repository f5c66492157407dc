// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/storefront/internal/metrics"
	"github.com/tomtom215/storefront/internal/models"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown store backend")

	// ErrUnavailable wraps load failures rejected by the circuit breaker.
	ErrUnavailable = errors.New("catalog store unavailable")
)

// Repository is a read-only source of catalog data.
// Returned slices must not be modified by callers.
type Repository interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	LoadOrders(ctx context.Context) ([]models.Order, error)
	Close() error
}

// Importer replaces the full contents of a persistent repository.
type Importer interface {
	Import(ctx context.Context, products []models.Product, orders []models.Order) error
}

// Named is implemented by repositories that report a backend name for metrics.
type Named interface {
	Backend() string
}

func backendName(r Repository) string {
	if n, ok := r.(Named); ok {
		return n.Backend()
	}
	return "unknown"
}

// timedLoad runs fn and records its duration, size and outcome.
func timedLoad[T any](backend, entity string, fn func() ([]T, error)) ([]T, error) {
	start := time.Now()
	out, err := fn()
	metrics.RecordStoreLoad(backend, entity, time.Since(start), len(out), err)
	return out, err
}
