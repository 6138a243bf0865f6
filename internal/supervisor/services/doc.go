// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package services adapts tracksim components to suture.Service.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with graceful Shutdown on cancel.

CatalogService loads a catalog document from disk into the recommendation
engine on startup and, optionally, on a fixed reload interval. Each load
reads the file through the ingest package, drops repeated track ids, trains
the engine and records the outcome in the tracksim_catalog_loads_total
metric.

	engine, _ := recommend.NewEngine(recommend.DefaultConfig(), logger)
	tree.AddCatalogService(services.NewCatalogService(engine, services.CatalogServiceConfig{
	    Path:           "/data/tracks.json",
	    TrainOnStartup: true,
	    ReloadInterval: 10 * time.Minute,
	}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
*/
package services
