// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

// Package metrics registers the service's Prometheus collectors with the
// default registry and provides small helpers for recording them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Query Metrics
	CatalogQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Time spent running the product listing pipeline",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	CatalogQueryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_query_matched_products",
			Help:    "Number of products matching the filters of a listing query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing co-purchase recommendations",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		},
	)

	// Store Metrics
	StoreLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_load_duration_seconds",
			Help:    "Duration of catalog loads from the backing store",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "entity"},
	)

	StoreLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
		[]string{"backend", "entity"},
	)

	StoreRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_records",
			Help: "Number of records returned by the most recent load",
		},
		[]string{"backend", "entity"},
	)

	// Snapshot Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
		[]string{"cache", "source"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_events_consumed_total",
			Help: "Catalog change events consumed from the message bus",
		},
		[]string{"topic", "result"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogQuery records one run of the listing pipeline.
func RecordCatalogQuery(duration time.Duration, matched int) {
	CatalogQueryDuration.Observe(duration.Seconds())
	CatalogQueryResults.Observe(float64(matched))
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(duration time.Duration, results int) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
}

// RecordStoreLoad records a load of products or orders from a backend.
func RecordStoreLoad(backend, entity string, duration time.Duration, records int, err error) {
	StoreLoadDuration.WithLabelValues(backend, entity).Observe(duration.Seconds())
	if err != nil {
		StoreLoadErrors.WithLabelValues(backend, entity).Inc()
		return
	}
	StoreRecords.WithLabelValues(backend, entity).Set(float64(records))
}

// RecordCacheLookup counts a hit or miss for the named cache.
func RecordCacheLookup(name string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(name).Inc()
	} else {
		CacheMisses.WithLabelValues(name).Inc()
	}
}

// RecordEventConsumed counts a consumed message; result is "ok" or "error".
func RecordEventConsumed(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(topic, result).Inc()
}
