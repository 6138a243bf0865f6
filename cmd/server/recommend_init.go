// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tracksim/internal/config"
	"github.com/tomtom215/tracksim/internal/metrics"
	"github.com/tomtom215/tracksim/internal/recommend"
	"github.com/tomtom215/tracksim/internal/supervisor"
	"github.com/tomtom215/tracksim/internal/supervisor/services"
)

// initRecommend builds the engine and, when a catalog file is configured,
// registers its loader with the catalog layer of tree.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetRecorder(metrics.NewRecommendRecorder())

	logger.Info().
		Int("default_limit", cfg.Recommend.DefaultLimit).
		Int("max_limit", cfg.Recommend.MaxLimit).
		Bool("reject_empty_training", cfg.Recommend.RejectEmptyTraining).
		Msg("recommendation engine initialized")

	if cfg.Catalog.BootstrapPath == "" {
		logger.Info().Msg("no catalog file configured, catalog starts empty")
		return engine, nil
	}

	tree.AddCatalogService(services.NewCatalogService(engine, buildCatalogServiceConfig(cfg), logger))
	logger.Info().
		Str("path", cfg.Catalog.BootstrapPath).
		Dur("reload_interval", cfg.Catalog.ReloadInterval).
		Msg("catalog loader added to supervisor tree")

	return engine, nil
}

// buildEngineConfig maps the application config onto the engine config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Training: recommend.TrainingConfig{
			RejectEmpty:           cfg.Recommend.RejectEmptyTraining,
			MaxReportedRejections: cfg.Recommend.MaxReportedRejections,
			MaxBatchSize:          cfg.Recommend.MaxTrainBatch,
		},
		Limits: recommend.LimitsConfig{
			DefaultLimit: cfg.Recommend.DefaultLimit,
			MaxLimit:     cfg.Recommend.MaxLimit,
		},
	}
}

func buildCatalogServiceConfig(cfg *config.Config) services.CatalogServiceConfig {
	return services.CatalogServiceConfig{
		Path:           cfg.Catalog.BootstrapPath,
		TrainOnStartup: cfg.Catalog.TrainOnStartup,
		ReloadInterval: cfg.Catalog.ReloadInterval,
	}
}

func buildTreeConfig(cfg *config.Config) supervisor.TreeConfig {
	return supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	}
}
