// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/middleware"
)

// slowRequestThreshold is the latency above which requests are logged at warn.
const slowRequestThreshold = 500 * time.Millisecond

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with middleware built from cfg.Security.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(slowRequestThreshold))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Set before Route so mounted subrouters inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		// ========================
		// Health Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/health/live", router.handler.HealthLive)
			r.Get("/health/ready", router.handler.HealthReady)
		})

		// ========================
		// Catalog Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Get("/products", router.handler.Products)
			r.Get("/recommendations", router.handler.Recommendations)
		})

		// ========================
		// Admin Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAdmin())
			r.Post("/admin/cache/invalidate", router.handler.InvalidateCache)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound("Resource not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).MethodNotAllowed("Method not allowed")
}
