// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"time"

	"github.com/tomtom215/tracksim/internal/cache"
	"github.com/tomtom215/tracksim/internal/middleware"
	"github.com/tomtom215/tracksim/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and decoding helpers
//   - handlers_health.go: Liveness, readiness and performance endpoints
//   - handlers_tracks.go: Training endpoint
//   - handlers_recommend.go: Recommendation endpoint
//   - handlers_catalog.go: Catalog inspection endpoints
type Handler struct {
	engine    *recommend.Engine
	perfMon   *middleware.PerformanceMonitor
	results   *cache.LRU[[]recommend.Recommendation]
	startTime time.Time
}

// NewHandler creates a new API handler backed by engine. Query limits and
// batch sizes come from the engine configuration.
//
//	handler := api.NewHandler(engine, monitor)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(engine *recommend.Engine, perfMon *middleware.PerformanceMonitor) *Handler {
	if perfMon == nil {
		perfMon = middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowRequestThreshold)
	}
	return &Handler{
		engine:    engine,
		perfMon:   perfMon,
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor fed by the router middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// EnableResultCache memoizes up to size recommendation results for ttl.
// Call before serving traffic. A non-positive size leaves caching off.
func (h *Handler) EnableResultCache(size int, ttl time.Duration) {
	if size <= 0 {
		h.results = nil
		return
	}
	h.results = cache.NewLRU[[]recommend.Recommendation](size, ttl)
}
