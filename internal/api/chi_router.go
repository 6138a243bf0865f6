// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tracksim/internal/middleware"
	"github.com/tomtom215/tracksim/internal/models"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler. A nil cfg uses
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)                           // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)                           // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)                        // Recover from panics
	r.Use(router.chiMiddleware.CORS())                    // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)                   // Labels by route pattern
	r.Use(router.handler.PerformanceMonitor().Middleware) // Latency window for /health/performance
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, &models.APIError{
			Code:    CodeNotFound,
			Message: "Route not found",
		}, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, &models.APIError{
			Code:    CodeMethodNotAllowed,
			Message: "Method not allowed",
		}, nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	// ========================
	// Training Endpoints
	// ========================
	r.Route("/api/v1/tracks", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("tracks"))
		r.Use(APISecurityHeaders())
		r.Post("/train", router.handler.TrainTracks)
	})

	// ========================
	// Recommendation Endpoints
	// ========================
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("recommendations"))
		r.Use(APISecurityHeaders())
		r.Post("/", router.handler.Recommend)
	})

	// ========================
	// Catalog Endpoints
	// ========================
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("catalog"))
		r.Use(APISecurityHeaders())
		r.Get("/status", router.handler.CatalogStatus)
		r.Get("/tracks", router.handler.ListTracks)
		r.Get("/tracks/{id}", router.handler.GetTrack)
		r.Get("/compare", router.handler.CompareTracks)
	})

	// Prometheus exposition
	r.Handle("/metrics", promhttp.Handler())

	return r
}
