// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages except
// textsim. Metrics are reported through the Recorder interface.

// maxLoggedSeeds caps the number of unknown seed IDs written to a log line.
const maxLoggedSeeds = 10

// Engine owns the track catalog and answers recommendation queries.
// It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Catalog and training state, guarded by mu
	mu      sync.RWMutex
	catalog *catalog
	status  Status

	recorder Recorder
}

// NewEngine creates a new recommendation engine with an empty catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		catalog:  newCatalog(),
		recorder: nopRecorder{},
	}, nil
}

// SetRecorder sets the metrics recorder. A nil recorder disables recording.
// Call before the engine is shared between goroutines.
func (e *Engine) SetRecorder(r Recorder) {
	if r == nil {
		r = nopRecorder{}
	}
	e.recorder = r
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Train extracts features from every raw track and stores them in the
// catalog, overwriting entries whose ID is already present.
//
// Malformed tracks never abort the batch; they are counted in the summary.
// An empty batch is accepted unless Config.Training.RejectEmpty is set, in
// which case ErrEmptyInput is returned and the catalog is left untouched.
func (e *Engine) Train(tracks []RawTrack) (TrainingSummary, error) {
	if len(tracks) == 0 && e.config.Training.RejectEmpty {
		return TrainingSummary{}, ErrEmptyInput
	}

	start := time.Now()

	e.mu.Lock()
	summary := e.trainLocked(tracks)
	e.mu.Unlock()

	duration := time.Since(start)

	e.logger.Info().
		Int("accepted", summary.Accepted).
		Int("skipped", summary.Skipped).
		Int("catalog_size", summary.CatalogSize).
		Int("version", summary.ModelVersion).
		Dur("duration", duration).
		Msg("catalog training complete")

	e.recorder.RecordTraining(summary, duration)
	return summary, nil
}

// trainLocked ingests the batch. Must be called with mu held for writing.
func (e *Engine) trainLocked(tracks []RawTrack) TrainingSummary {
	var summary TrainingSummary
	maxReported := e.config.Training.MaxReportedRejections

	for i := range tracks {
		features, err := Extract(tracks[i])
		if err != nil {
			summary.Skipped++
			if len(summary.Rejected) < maxReported {
				summary.Rejected = append(summary.Rejected, rejectionFor(i, tracks[i].ID, err))
			}
			e.logger.Debug().
				Int("index", i).
				Str("track_id", tracks[i].ID).
				Err(err).
				Msg("skipping malformed track")
			continue
		}

		e.catalog.put(features)
		summary.Accepted++
	}

	e.status.ModelVersion++
	e.status.TrainingRuns++
	e.status.TotalAccepted += int64(summary.Accepted)
	e.status.TotalSkipped += int64(summary.Skipped)
	e.status.LastTrainedAt = time.Now()
	e.status.TrackCount = e.catalog.len()

	summary.CatalogSize = e.status.TrackCount
	summary.ModelVersion = e.status.ModelVersion
	return summary
}

// rejectionFor builds a Rejection from an extraction error.
func rejectionFor(index int, id string, err error) Rejection {
	reason := err.Error()
	var malformed *MalformedTrackError
	if errors.As(err, &malformed) {
		reason = malformed.Reason
	}
	return Rejection{Index: index, ID: id, Reason: reason}
}

// Recommend ranks every catalog track that is not a seed by its mean
// similarity to the resolved seeds and returns the top limit entries.
//
// Seed IDs missing from the catalog are dropped with a warning. Errors:
// ErrInvalidLimit for limit <= 0, ErrNoTrainedData for an empty catalog,
// ErrNoValidSeeds when no seed resolves, and ErrNoCandidates when every
// catalog track is a seed. Recommend never modifies the catalog.
func (e *Engine) Recommend(seedIDs []string, limit int) ([]Recommendation, error) {
	start := time.Now()
	stats := RecommendStats{Seeds: len(seedIDs)}

	recs, err := e.recommend(seedIDs, limit, &stats)

	stats.Returned = len(recs)
	stats.Duration = time.Since(start)
	stats.Err = err
	e.recorder.RecordRecommendation(stats)

	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("seeds", stats.Seeds).
		Int("resolved_seeds", stats.ResolvedSeeds).
		Int("candidates", stats.Candidates).
		Int("returned", stats.Returned).
		Dur("duration", stats.Duration).
		Msg("recommendation complete")

	return recs, nil
}

// recommend does the work of Recommend and fills in stats.
func (e *Engine) recommend(seedIDs []string, limit int, stats *RecommendStats) ([]Recommendation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidLimit, limit)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.catalog.len() == 0 {
		return nil, ErrNoTrainedData
	}

	seeds, exclude := e.resolveSeeds(seedIDs, stats)
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: none of %d seeds are in the catalog", ErrNoValidSeeds, len(seedIDs))
	}

	scored := e.scoreCandidates(seeds, exclude)
	stats.Candidates = len(scored)
	if len(scored) == 0 {
		return nil, ErrNoCandidates
	}

	// Stable sort keeps catalog insertion order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// resolveSeeds looks up seed features and builds the exclusion set.
// Every seed ID is excluded from candidates, resolved or not. Duplicate IDs
// resolve once. Must be called with mu held.
func (e *Engine) resolveSeeds(seedIDs []string, stats *RecommendStats) ([]TrackFeatures, map[string]struct{}) {
	exclude := make(map[string]struct{}, len(seedIDs))
	seeds := make([]TrackFeatures, 0, len(seedIDs))
	var unknown []string

	for _, id := range seedIDs {
		if _, seen := exclude[id]; seen {
			continue
		}
		exclude[id] = struct{}{}

		features, ok := e.catalog.get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		seeds = append(seeds, features)
	}

	stats.ResolvedSeeds = len(seeds)
	stats.DroppedSeeds = len(unknown)

	if len(unknown) > 0 {
		logged := unknown
		if len(logged) > maxLoggedSeeds {
			logged = logged[:maxLoggedSeeds]
		}
		e.logger.Warn().
			Int("dropped", len(unknown)).
			Strs("track_ids", logged).
			Msg("dropping seed tracks missing from catalog")
	}

	return seeds, exclude
}

// scoreCandidates computes the mean seed similarity for every non-excluded
// catalog entry, in catalog order. Must be called with mu held.
func (e *Engine) scoreCandidates(seeds []TrackFeatures, exclude map[string]struct{}) []Recommendation {
	scored := make([]Recommendation, 0, e.catalog.len())
	n := float64(len(seeds))

	for i := range e.catalog.entries {
		candidate := &e.catalog.entries[i]
		if _, excluded := exclude[candidate.ID]; excluded {
			continue
		}

		var sum float64
		for j := range seeds {
			sum += Similarity(seeds[j], *candidate)
		}

		scored = append(scored, Recommendation{
			TrackID: candidate.ID,
			Score:   sum / n,
		})
	}

	return scored
}

// Lookup returns a copy of the stored features for a track ID.
func (e *Engine) Lookup(id string) (TrackFeatures, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	features, ok := e.catalog.get(id)
	if !ok {
		return TrackFeatures{}, false
	}
	return features.Clone(), true
}

// TrackIDs returns the catalog identifiers in insertion order.
func (e *Engine) TrackIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.ids()
}

// Len returns the number of tracks in the catalog.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.len()
}

// GetStatus returns the current catalog status.
func (e *Engine) GetStatus() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}
