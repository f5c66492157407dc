// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	correlationIDKey contextKey = "correlation_id"
)

// GenerateRequestID returns a new UUIDv4 string.
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateCorrelationID returns a short ID for tying background work together.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// ContextWithRequestID attaches an HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithNewCorrelationID attaches a freshly generated correlation ID.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, correlationIDKey, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger enriched with the request and correlation
// IDs carried by ctx.
//
//	logging.Ctx(r.Context()).Info().Msg("products listed")
func Ctx(ctx context.Context) *zerolog.Logger {
	lc := Logger().With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	l := lc.Logger()
	return &l
}
