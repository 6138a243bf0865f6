// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package supervisor runs tracksim's long-lived services under a suture v4
supervisor tree.

# Tree Layout

	tracksim (root)
	├── catalog-layer
	│   └── catalog-loader (services.CatalogService)
	└── api-layer
	    └── http-server (services.HTTPServerService)

Each layer is its own suture.Supervisor, so restart accounting is kept per
layer. A catalog file that fails to parse on every reload backs the catalog
layer off without touching the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    FailureBackoff:   cfg.Supervisor.FailureBackoff,
	})
	if err != nil {
	    return err
	}
	tree.AddCatalogService(services.NewCatalogService(engine, catalogCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Configuration

Zero fields in TreeConfig fall back to suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Contract

Services implement suture.Service:
  - Return suture.ErrDoNotRestart: finished, not restarted
  - Return anything else: restarted subject to backoff
  - ctx canceled: return promptly, usually with ctx.Err()

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog on the slog bridge from the logging package, so they share the
zerolog output of the rest of the process.

If services fail to stop within ShutdownTimeout, UnstoppedServiceReport
lists them.
*/
package supervisor
