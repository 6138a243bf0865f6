// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"slices"
	"time"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultLimit = 10

// Artist is an artist credit on a raw track.
type Artist struct {
	// Name is the artist display name.
	Name string `json:"name"`

	// Genres is the artist's genre list, if known.
	Genres []string `json:"genres,omitempty"`
}

// RawTrack is a track record as received from an external catalog.
// Only the first artist is used for feature extraction.
type RawTrack struct {
	// ID is the catalog identifier. It must be stable and unique.
	ID string `json:"id"`

	// Name is the track title.
	Name string `json:"name"`

	// Artists lists the credited artists; the first one is the primary artist.
	Artists []Artist `json:"artists"`

	// Popularity is a numeric popularity measure, usually on a 0-100 scale.
	// Integers, floats, and numeric strings are accepted; anything else
	// (including absence) counts as 0.
	Popularity any `json:"popularity,omitempty"`
}

// PrimaryArtist returns the first credited artist, if any.
//
//nolint:gocritic // hugeParam: RawTrack passed by value to keep it immutable
func (t RawTrack) PrimaryArtist() (Artist, bool) {
	if len(t.Artists) == 0 {
		return Artist{}, false
	}
	return t.Artists[0], true
}

// TrackFeatures is the comparable representation of a track stored in the
// catalog. ID is copied from the RawTrack and never changes afterwards.
type TrackFeatures struct {
	// ID is the catalog identifier and the join key back to the raw track.
	ID string `json:"id"`

	// Name is the normalized track title.
	Name string `json:"name"`

	// Artist is the normalized primary artist name.
	Artist string `json:"artist"`

	// Popularity is carried through from the raw track unchanged.
	Popularity float64 `json:"popularity"`

	// Tokens is the lexicographically sorted set of words in name and artist.
	Tokens []string `json:"tokens"`

	// Genres is the sorted set of the primary artist's genre tags.
	Genres []string `json:"genres"`
}

// Clone returns a deep copy so callers never share slices with the catalog.
//
//nolint:gocritic // hugeParam: value receiver keeps the original untouched
func (f TrackFeatures) Clone() TrackFeatures {
	f.Tokens = slices.Clone(f.Tokens)
	f.Genres = slices.Clone(f.Genres)
	return f
}

// Recommendation is a ranked catalog track with its similarity score.
type Recommendation struct {
	// TrackID is the catalog identifier of the recommended track.
	TrackID string `json:"track_id"`

	// Score is the mean similarity to the seed tracks (0-1, higher is better).
	Score float64 `json:"score"`
}

// Rejection describes a raw track skipped during training.
type Rejection struct {
	// Index is the position of the track in the training batch.
	Index int `json:"index"`

	// ID is the raw track identifier, possibly empty.
	ID string `json:"id,omitempty"`

	// Reason explains why the track was malformed.
	Reason string `json:"reason"`
}

// TrainingSummary reports the outcome of a Train call.
type TrainingSummary struct {
	// Accepted is the number of tracks inserted or overwritten.
	Accepted int `json:"accepted"`

	// Skipped is the number of malformed tracks.
	Skipped int `json:"skipped"`

	// Rejected holds details for the first skipped tracks, up to
	// Config.Training.MaxReportedRejections entries.
	Rejected []Rejection `json:"rejected,omitempty"`

	// CatalogSize is the number of tracks in the catalog after training.
	CatalogSize int `json:"catalog_size"`

	// ModelVersion is the catalog version after training.
	ModelVersion int `json:"model_version"`
}

// Status describes the current catalog state.
type Status struct {
	// TrackCount is the number of tracks in the catalog.
	TrackCount int `json:"track_count"`

	// ModelVersion increments on every Train call.
	ModelVersion int `json:"model_version"`

	// LastTrainedAt is when the last Train call completed.
	LastTrainedAt time.Time `json:"last_trained_at"`

	// TrainingRuns is the number of Train calls that completed.
	TrainingRuns int64 `json:"training_runs"`

	// TotalAccepted is the cumulative number of accepted tracks.
	TotalAccepted int64 `json:"total_accepted"`

	// TotalSkipped is the cumulative number of skipped tracks.
	TotalSkipped int64 `json:"total_skipped"`
}

// RecommendStats is reported to the Recorder after every Recommend call.
type RecommendStats struct {
	Seeds         int
	ResolvedSeeds int
	DroppedSeeds  int
	Candidates    int
	Returned      int
	Duration      time.Duration
	Err           error
}

// Recorder receives engine measurements. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// RecordTraining is called once per completed Train call.
	RecordTraining(summary TrainingSummary, duration time.Duration)

	// RecordRecommendation is called once per Recommend call.
	RecordRecommendation(stats RecommendStats)
}

// nopRecorder discards all measurements.
type nopRecorder struct{}

func (nopRecorder) RecordTraining(TrainingSummary, time.Duration) {}

//nolint:gocritic // hugeParam: matches the Recorder interface
func (nopRecorder) RecordRecommendation(RecommendStats) {}

// SeedIDs extracts the identifiers of raw seed tracks, preserving order.
func SeedIDs(tracks []RawTrack) []string {
	ids := make([]string, 0, len(tracks))
	for i := range tracks {
		ids = append(ids, tracks[i].ID)
	}
	return ids
}
