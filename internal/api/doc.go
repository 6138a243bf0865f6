// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package api provides the HTTP interface of the recommendation service.

Routes (chi):

	GET  /api/v1/health/live          liveness probe
	GET  /api/v1/health/ready         503 until the catalog has a track
	GET  /api/v1/health/performance   per-route latency percentiles
	POST /api/v1/tracks/train         train a batch of raw tracks
	POST /api/v1/recommendations      recommend from seed tracks
	GET  /api/v1/catalog/status       catalog size and model version
	GET  /api/v1/catalog/tracks       paginated track ids
	GET  /api/v1/catalog/tracks/{id}  stored features for one track
	GET  /api/v1/catalog/compare      similarity breakdown for two tracks
	GET  /metrics                     Prometheus exposition

Every JSON response uses the models.APIResponse envelope. Engine errors map
to status codes as follows:

	INVALID_LIMIT, EMPTY_INPUT, VALIDATION_ERROR, INVALID_JSON   400
	NO_TRAINED_DATA                                              409
	NO_VALID_SEEDS, NO_CANDIDATES                                422

Middleware order: request ID, real IP, panic recovery, CORS, Prometheus
metrics, performance monitor, compression; then per-group rate limiting and
security headers.

Handler.EnableResultCache memoizes successful recommendation results keyed
by seeds, limit and model version; responses carry "cached": true when
served from it.
*/
package api
