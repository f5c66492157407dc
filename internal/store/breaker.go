// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/metrics"
	"github.com/tomtom215/storefront/internal/models"
)

// BreakerRepository wraps a Repository with a circuit breaker so a failing
// backend is shed quickly instead of being hammered on every cache miss.
//
// The breaker runs on wall-clock time (sony/gobreaker). Tests exercise it
// through failure counts, not elapsed time.
type BreakerRepository struct {
	inner Repository
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewBreakerRepository wraps inner. The breaker opens once at least
// cfg.MinRequests loads were seen in the current interval and the failure
// ratio reaches cfg.FailureRatio.
func NewBreakerRepository(inner Repository, cfg config.BreakerConfig) *BreakerRepository {
	name := "store-" + backendName(inner)

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerRepository{inner: inner, cb: cb, name: name}
}

// Backend reports the wrapped backend's name.
func (b *BreakerRepository) Backend() string { return backendName(b.inner) }

// Name is the breaker name used in metrics.
func (b *BreakerRepository) Name() string { return b.name }

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerRepository) State() string { return stateToString(b.cb.State()) }

func (b *BreakerRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	return castResult[[]models.Product](b.execute(func() (interface{}, error) {
		return b.inner.LoadProducts(ctx)
	}))
}

func (b *BreakerRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	return castResult[[]models.Order](b.execute(func() (interface{}, error) {
		return b.inner.LoadOrders(ctx)
	}))
}

// Import is forwarded without breaker protection; it only runs at startup.
func (b *BreakerRepository) Import(ctx context.Context, products []models.Product, orders []models.Order) error {
	imp, ok := b.inner.(Importer)
	if !ok {
		return fmt.Errorf("%s backend does not support import", b.Backend())
	}
	return imp.Import(ctx, products, orders)
}

func (b *BreakerRepository) Close() error { return b.inner.Close() }

func (b *BreakerRepository) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
