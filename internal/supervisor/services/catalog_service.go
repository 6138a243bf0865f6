// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tracksim/internal/ingest"
	"github.com/tomtom215/tracksim/internal/metrics"
	"github.com/tomtom215/tracksim/internal/recommend"
)

// CatalogTrainer is the part of recommend.Engine the loader needs.
type CatalogTrainer interface {
	Train(tracks []recommend.RawTrack) (recommend.TrainingSummary, error)
}

// CatalogServiceConfig holds configuration for the catalog loader.
type CatalogServiceConfig struct {
	// Path is the catalog document to load.
	Path string

	// TrainOnStartup loads Path as soon as the service starts.
	TrainOnStartup bool

	// ReloadInterval re-reads Path periodically. Zero disables reloads.
	ReloadInterval time.Duration
}

// CatalogService feeds a catalog file into the engine under supervision.
//
// A failed startup load returns an error so the supervisor retries it with
// backoff. A failed periodic reload is logged and the previous catalog stays
// in place. Once there is nothing left to do the service returns
// suture.ErrDoNotRestart.
type CatalogService struct {
	trainer CatalogTrainer
	config  CatalogServiceConfig
	load    func(path string) ([]recommend.RawTrack, error)
	logger  zerolog.Logger
	name    string
}

// NewCatalogService creates a catalog loader for trainer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(trainer CatalogTrainer, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		trainer: trainer,
		config:  cfg,
		load:    ingest.LoadFile,
		logger:  logger.With().Str("service", "catalog").Str("path", cfg.Path).Logger(),
		name:    "catalog-loader",
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("train_on_startup", s.config.TrainOnStartup).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("catalog loader starting")

	if s.config.TrainOnStartup {
		if err := s.loadOnce(); err != nil {
			return fmt.Errorf("initial catalog load: %w", err)
		}
	}

	if s.config.ReloadInterval <= 0 {
		s.logger.Debug().Msg("periodic reload disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog loader shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.loadOnce(); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous catalog")
			}
		}
	}
}

// loadOnce reads, dedupes and trains one copy of the catalog file.
func (s *CatalogService) loadOnce() error {
	start := time.Now()

	tracks, err := s.load(s.config.Path)
	metrics.RecordCatalogLoad(err)
	if err != nil {
		return err
	}

	unique, dropped := ingest.DedupeByID(tracks)
	summary, err := s.trainer.Train(unique)
	if err != nil {
		return fmt.Errorf("train catalog: %w", err)
	}

	s.logger.Info().
		Int("read", len(tracks)).
		Int("duplicates_dropped", dropped).
		Int("accepted", summary.Accepted).
		Int("skipped", summary.Skipped).
		Int("catalog_size", summary.CatalogSize).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")
	return nil
}

// String returns the service name for logging.
func (s *CatalogService) String() string {
	return s.name
}
