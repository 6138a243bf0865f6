// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tracksim/internal/config"
	"github.com/tomtom215/tracksim/internal/supervisor"
)

func testConfig() *config.Config {
	return &config.Config{
		Recommend: config.RecommendConfig{
			DefaultLimit:          7,
			MaxLimit:              70,
			MaxTrainBatch:         500,
			RejectEmptyTraining:   true,
			MaxReportedRejections: 3,
		},
		Catalog: config.CatalogConfig{
			BootstrapPath:  "/data/tracks.json",
			ReloadInterval: time.Minute,
			TrainOnStartup: true,
		},
		Supervisor: config.SupervisorConfig{
			FailureThreshold: 4,
			FailureDecay:     20,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  5 * time.Second,
		},
	}
}

func TestBuildEngineConfig(t *testing.T) {
	got := buildEngineConfig(testConfig())

	if !got.Training.RejectEmpty {
		t.Error("Training.RejectEmpty = false, want true")
	}
	if got.Training.MaxReportedRejections != 3 {
		t.Errorf("Training.MaxReportedRejections = %d, want 3", got.Training.MaxReportedRejections)
	}
	if got.Training.MaxBatchSize != 500 {
		t.Errorf("Training.MaxBatchSize = %d, want 500", got.Training.MaxBatchSize)
	}
	if got.Limits.DefaultLimit != 7 || got.Limits.MaxLimit != 70 {
		t.Errorf("Limits = %+v, want 7/70", got.Limits)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestBuildCatalogServiceConfig(t *testing.T) {
	got := buildCatalogServiceConfig(testConfig())
	if got.Path != "/data/tracks.json" || got.ReloadInterval != time.Minute || !got.TrainOnStartup {
		t.Errorf("buildCatalogServiceConfig() = %+v", got)
	}
}

func TestBuildTreeConfig(t *testing.T) {
	got := buildTreeConfig(testConfig())
	want := supervisor.TreeConfig{
		FailureThreshold: 4,
		FailureDecay:     20,
		FailureBackoff:   time.Second,
		ShutdownTimeout:  5 * time.Second,
	}
	if got != want {
		t.Errorf("buildTreeConfig() = %+v, want %+v", got, want)
	}
}

func TestInitRecommend(t *testing.T) {
	tree, err := supervisor.NewSupervisorTree(slog.New(slog.NewTextHandler(io.Discard, nil)), supervisor.TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	t.Run("with catalog file", func(t *testing.T) {
		engine, err := initRecommend(testConfig(), zerolog.Nop(), tree)
		if err != nil {
			t.Fatalf("initRecommend() error = %v", err)
		}
		if engine.Config().Limits.DefaultLimit != 7 {
			t.Errorf("engine default limit = %d, want 7", engine.Config().Limits.DefaultLimit)
		}
	})

	t.Run("without catalog file", func(t *testing.T) {
		cfg := testConfig()
		cfg.Catalog.BootstrapPath = ""
		engine, err := initRecommend(cfg, zerolog.Nop(), tree)
		if err != nil {
			t.Fatalf("initRecommend() error = %v", err)
		}
		if engine.Len() != 0 {
			t.Errorf("engine.Len() = %d, want 0", engine.Len())
		}
	})

	t.Run("invalid limits", func(t *testing.T) {
		cfg := testConfig()
		cfg.Recommend.MaxLimit = 1
		if _, err := initRecommend(cfg, zerolog.Nop(), tree); err == nil {
			t.Error("initRecommend() error = nil, want validation error")
		}
	})
}
