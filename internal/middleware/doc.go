// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package middleware provides infrastructure HTTP middleware used by the API
router.

Key Components:

  - RequestID: reuses or generates an X-Request-ID and stores it in the
    request context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - PerformanceMonitor: sliding-window latency percentiles per route, with
    slow request logging

All middleware has the standard func(http.Handler) http.Handler shape and
mounts directly with chi's Router.Use. PrometheusMetrics and
PerformanceMonitor label requests by chi route pattern, so they must run
inside a chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)

Route patterns are read after the handler returns, when chi has finished
matching, which keeps label cardinality bounded by the route table.
*/
package middleware
