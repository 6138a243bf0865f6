// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package metrics

import (
	"errors"
	"time"

	"github.com/tomtom215/tracksim/internal/recommend"
)

// RecommendRecorder exports engine measurements to Prometheus.
// It implements recommend.Recorder.
type RecommendRecorder struct{}

// NewRecommendRecorder returns a recorder backed by the package collectors.
func NewRecommendRecorder() *RecommendRecorder {
	return &RecommendRecorder{}
}

// RecordTraining implements recommend.Recorder.
func (RecommendRecorder) RecordTraining(summary recommend.TrainingSummary, duration time.Duration) {
	TrainingBatches.Inc()
	TrainingTracks.WithLabelValues("accepted").Add(float64(summary.Accepted))
	TrainingTracks.WithLabelValues("skipped").Add(float64(summary.Skipped))
	TrainingDuration.Observe(duration.Seconds())
	CatalogSize.Set(float64(summary.CatalogSize))
	ModelVersion.Set(float64(summary.ModelVersion))
}

// RecordRecommendation implements recommend.Recorder.
//
//nolint:gocritic // hugeParam: matches the recommend.Recorder interface
func (RecommendRecorder) RecordRecommendation(stats recommend.RecommendStats) {
	RecommendDuration.Observe(stats.Duration.Seconds())
	RecommendDroppedSeeds.Add(float64(stats.DroppedSeeds))

	if stats.Err != nil {
		RecommendFailures.WithLabelValues(FailureReason(stats.Err)).Inc()
		return
	}
	RecommendResults.Observe(float64(stats.Returned))
}

// FailureReason maps an engine error to a bounded label value.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, recommend.ErrInvalidLimit):
		return "invalid_limit"
	case errors.Is(err, recommend.ErrNoTrainedData):
		return "no_trained_data"
	case errors.Is(err, recommend.ErrNoValidSeeds):
		return "no_valid_seeds"
	case errors.Is(err, recommend.ErrNoCandidates):
		return "no_candidates"
	default:
		return "other"
	}
}

var _ recommend.Recorder = RecommendRecorder{}
