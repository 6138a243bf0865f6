// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

// track builds a raw track with a single artist.
func track(id, name, artist string, popularity any, genres ...string) RawTrack {
	return RawTrack{
		ID:         id,
		Name:       name,
		Artists:    []Artist{{Name: artist, Genres: genres}},
		Popularity: popularity,
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		track      RawTrack
		wantReason string
		want       TrackFeatures
	}{
		{
			name:  "basic track",
			track: track("t1", "Night Drive", "DJ Nova", 50, "synthwave", "electronic", "synthwave"),
			want: TrackFeatures{
				ID:         "t1",
				Name:       "night drive",
				Artist:     "dj nova",
				Popularity: 50,
				Tokens:     []string{"dj", "drive", "night", "nova"},
				Genres:     []string{"electronic", "synthwave"},
			},
		},
		{
			name:  "no genres yields empty set",
			track: track("t2", "  Sunny Day ", "Beach Co", 20.5),
			want: TrackFeatures{
				ID:         "t2",
				Name:       "sunny day",
				Artist:     "beach co",
				Popularity: 20.5,
				Tokens:     []string{"beach", "co", "day", "sunny"},
				Genres:     []string{},
			},
		},
		{
			name: "only first artist is used",
			track: RawTrack{
				ID:      "t3",
				Name:    "Duet",
				Artists: []Artist{{Name: "Alpha"}, {Name: "Beta", Genres: []string{"rock"}}},
			},
			want: TrackFeatures{
				ID:     "t3",
				Name:   "duet",
				Artist: "alpha",
				Tokens: []string{"alpha", "duet"},
				Genres: []string{},
			},
		},
		{
			name:       "missing id",
			track:      track("", "Name", "Artist", 10),
			wantReason: ReasonMissingID,
		},
		{
			name:       "blank id",
			track:      track("   ", "Name", "Artist", 10),
			wantReason: ReasonMissingID,
		},
		{
			name:       "missing name",
			track:      track("t4", "", "Artist", 10),
			wantReason: ReasonMissingName,
		},
		{
			name:       "whitespace name",
			track:      track("t5", " \t ", "Artist", 10),
			wantReason: ReasonMissingName,
		},
		{
			name:       "no artists",
			track:      RawTrack{ID: "t6", Name: "Name"},
			wantReason: ReasonMissingArtist,
		},
		{
			name:       "empty artist name",
			track:      track("t7", "Name", "", 10),
			wantReason: ReasonMissingArtist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract(tt.track)
			if tt.wantReason != "" {
				if !errors.Is(err, ErrMalformedTrack) {
					t.Fatalf("Extract() error = %v, want ErrMalformedTrack", err)
				}
				var malformed *MalformedTrackError
				if !errors.As(err, &malformed) {
					t.Fatalf("Extract() error type = %T, want *MalformedTrackError", err)
				}
				if malformed.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", malformed.Reason, tt.wantReason)
				}
				return
			}

			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtract_PreservesID(t *testing.T) {
	t.Parallel()

	raw := track(" Mixed-Case:ID ", "Name", "Artist", 0)
	got, err := Extract(raw)
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}
	if got.ID != raw.ID {
		t.Errorf("ID = %q, want %q", got.ID, raw.ID)
	}
}

func TestCoercePopularity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"int64", int64(77), 77},
		{"uint8", uint8(5), 5},
		{"float32", float32(12.5), 12.5},
		{"float64", 99.9, 99.9},
		{"numeric string", " 63 ", 63},
		{"non-numeric string", "popular", 0},
		{"json number", json.Number("31.5"), 31.5},
		{"bad json number", json.Number("x"), 0},
		{"bool", true, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"negative kept", -5, -5},
		{"above scale kept", 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := coercePopularity(tt.value); got != tt.want {
				t.Errorf("coercePopularity(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMalformedTrackError_Error(t *testing.T) {
	t.Parallel()

	withID := &MalformedTrackError{ID: "t1", Reason: ReasonMissingName}
	if got, want := withID.Error(), `malformed track "t1": missing name`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noID := &MalformedTrackError{Reason: ReasonMissingID}
	if got, want := noID.Error(), "malformed track: missing id"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTrackFeatures_Clone(t *testing.T) {
	t.Parallel()

	orig := TrackFeatures{ID: "t1", Tokens: []string{"a", "b"}, Genres: []string{"rock"}}
	clone := orig.Clone()
	clone.Tokens[0] = "changed"
	clone.Genres[0] = "changed"

	if orig.Tokens[0] != "a" || orig.Genres[0] != "rock" {
		t.Errorf("Clone() shares slices with original: %+v", orig)
	}
}

func TestSeedIDs(t *testing.T) {
	t.Parallel()

	got := SeedIDs([]RawTrack{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	want := []string{"a", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SeedIDs() = %v, want %v", got, want)
	}
}
