// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package main is the entry point for the tracksim server.

tracksim keeps an in-memory catalog of music tracks and recommends similar
tracks by comparing track titles, primary artists, artist genres and
popularity. Catalogs are fed over HTTP (POST /api/v1/tracks/train) or from a
JSON file on disk.

# Process Layout

	tracksim (root supervisor)
	├── catalog-layer
	│   └── catalog-loader   only when CATALOG_BOOTSTRAP_PATH is set
	└── api-layer
	    └── http-server      chi router, see internal/api

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Supervisor tree: suture v4 with sutureslog events
 4. Recommendation engine, plus the catalog loader when configured
 5. HTTP server under the api layer

SIGINT and SIGTERM cancel the tree; the HTTP server drains for
SHUTDOWN_TIMEOUT before the process exits.

# Configuration

Common environment variables:

	HTTP_HOST, HTTP_PORT            listen address (default 0.0.0.0:3870)
	LOG_LEVEL, LOG_FORMAT           info / json by default
	CORS_ORIGINS                    comma separated, default *
	RATE_LIMIT_REQUESTS             requests per window per client
	DISABLE_RATE_LIMIT              true turns rate limiting off
	RECOMMEND_DEFAULT_LIMIT         limit used when a request omits it
	RECOMMEND_MAX_LIMIT             largest accepted limit
	CATALOG_BOOTSTRAP_PATH          JSON catalog loaded at startup
	CATALOG_RELOAD_INTERVAL         reload period, 0 loads once
	CONFIG_PATH                     optional YAML config file

See internal/config for the full list.
*/
package main
