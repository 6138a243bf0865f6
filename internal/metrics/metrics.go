// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package metrics defines the Prometheus metrics exported on /metrics.
//
// Metrics are registered with the default registry at package init through
// promauto. Callers use the Record* helpers rather than touching the
// collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracksim_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracksim_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Training Metrics
	TrainingBatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracksim_training_batches_total",
			Help: "Total number of completed training batches",
		},
	)

	TrainingTracks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_training_tracks_total",
			Help: "Total number of tracks processed by training, by outcome",
		},
		[]string{"outcome"}, // "accepted", "skipped"
	)

	TrainingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracksim_training_duration_seconds",
			Help:    "Duration of training batches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracksim_catalog_tracks",
			Help: "Current number of tracks in the catalog",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracksim_model_version",
			Help: "Current catalog model version (increments on every training batch)",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_catalog_loads_total",
			Help: "Total number of catalog file loads, by result",
		},
		[]string{"result"}, // "success", "error"
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracksim_recommend_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracksim_recommend_results",
			Help:    "Number of recommendations returned per query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	RecommendDroppedSeeds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracksim_recommend_dropped_seeds_total",
			Help: "Total number of seed tracks dropped because they were not in the catalog",
		},
	)

	RecommendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_recommend_failures_total",
			Help: "Total number of failed recommendation queries, by reason",
		},
		[]string{"reason"},
	)

	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracksim_recommend_cache_lookups_total",
			Help: "Total number of recommendation result cache lookups, by result",
		},
		[]string{"result"}, // "hit", "miss"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
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

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records the outcome of loading the catalog file.
func RecordCatalogLoad(err error) {
	if err != nil {
		CatalogLoads.WithLabelValues("error").Inc()
		return
	}
	CatalogLoads.WithLabelValues("success").Inc()
}

// RecordRecommendCacheLookup records a result cache hit or miss.
func RecordRecommendCacheLookup(hit bool) {
	if hit {
		RecommendCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	RecommendCacheLookups.WithLabelValues("miss").Inc()
}
