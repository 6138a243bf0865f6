// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"math"
	"strings"

	"github.com/tomtom215/tracksim/internal/recommend/textsim"
)

// Similarity weights. They sum to 1.0 so the combined score stays in [0, 1].
const (
	NameWeight       = 0.30
	ArtistWeight     = 0.30
	TokenWeight      = 0.20
	PopularityWeight = 0.20
)

// PopularityScale is the width of the popularity range assumed by the
// popularity sub-score.
const PopularityScale = 100.0

// Breakdown holds the individual sub-scores of a similarity computation.
type Breakdown struct {
	Name       float64 `json:"name"`
	Artist     float64 `json:"artist"`
	Tokens     float64 `json:"tokens"`
	Popularity float64 `json:"popularity"`
}

// Total returns the weighted sum of the sub-scores, clamped to [0, 1].
func (b Breakdown) Total() float64 {
	return clamp01(NameWeight*b.Name +
		ArtistWeight*b.Artist +
		TokenWeight*b.Tokens +
		PopularityWeight*b.Popularity)
}

// Similarity returns how alike two tracks are, in [0, 1].
// It is symmetric and Similarity(a, a) == 1.
//
//nolint:gocritic // hugeParam: features passed by value for immutability
func Similarity(a, b TrackFeatures) float64 {
	return Compare(a, b).Total()
}

// Compare returns the per-signal sub-scores for a pair of tracks.
//
//nolint:gocritic // hugeParam: features passed by value for immutability
func Compare(a, b TrackFeatures) Breakdown {
	return Breakdown{
		Name:       textsim.Dice(a.Name, b.Name),
		Artist:     textsim.Dice(a.Artist, b.Artist),
		Tokens:     textsim.Dice(strings.Join(a.Tokens, " "), strings.Join(b.Tokens, " ")),
		Popularity: popularitySimilarity(a.Popularity, b.Popularity),
	}
}

// popularitySimilarity is 1 − |a − b| / PopularityScale, clamped to [0, 1].
func popularitySimilarity(a, b float64) float64 {
	return clamp01(1 - math.Abs(a-b)/PopularityScale)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
