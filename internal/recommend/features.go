// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/tracksim/internal/recommend/textsim"
)

// Extract converts a raw track into its comparable features.
//
// A track needs a non-empty ID, a non-empty name, and a primary artist with a
// non-empty name. Otherwise Extract returns a *MalformedTrackError wrapping
// ErrMalformedTrack. Extract has no side effects.
//
//nolint:gocritic // hugeParam: RawTrack passed by value to keep it immutable
func Extract(track RawTrack) (TrackFeatures, error) {
	if strings.TrimSpace(track.ID) == "" {
		return TrackFeatures{}, &MalformedTrackError{ID: track.ID, Reason: ReasonMissingID}
	}

	name := textsim.Normalize(track.Name)
	if name == "" {
		return TrackFeatures{}, &MalformedTrackError{ID: track.ID, Reason: ReasonMissingName}
	}

	primary, ok := track.PrimaryArtist()
	artist := textsim.Normalize(primary.Name)
	if !ok || artist == "" {
		return TrackFeatures{}, &MalformedTrackError{ID: track.ID, Reason: ReasonMissingArtist}
	}

	return TrackFeatures{
		ID:         track.ID,
		Name:       name,
		Artist:     artist,
		Popularity: coercePopularity(track.Popularity),
		Tokens:     textsim.TokenSet(name, artist),
		Genres:     genreSet(primary.Genres),
	}, nil
}

// genreSet deduplicates genre tags, keeping them verbatim.
func genreSet(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g != "" {
			out = append(out, g)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// floater matches json.Number from both encoding/json and goccy/go-json.
type floater interface {
	Float64() (float64, error)
}

// coercePopularity converts the loosely typed popularity value to a float.
// Absent, non-numeric, and non-finite values become 0.
func coercePopularity(v any) float64 {
	var f float64
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		f = p
	case float32:
		f = float64(p)
	case int:
		f = float64(p)
	case int8:
		f = float64(p)
	case int16:
		f = float64(p)
	case int32:
		f = float64(p)
	case int64:
		f = float64(p)
	case uint:
		f = float64(p)
	case uint8:
		f = float64(p)
	case uint16:
		f = float64(p)
	case uint32:
		f = float64(p)
	case uint64:
		f = float64(p)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case floater:
		parsed, err := p.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
