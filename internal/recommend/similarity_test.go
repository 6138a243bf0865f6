// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func mustExtract(t *testing.T, raw RawTrack) TrackFeatures {
	t.Helper()
	f, err := Extract(raw)
	if err != nil {
		t.Fatalf("Extract(%q) unexpected error: %v", raw.ID, err)
	}
	return f
}

func TestWeightsSumToOne(t *testing.T) {
	t.Parallel()

	sum := NameWeight + ArtistWeight + TokenWeight + PopularityWeight
	if math.Abs(sum-1) > epsilon {
		t.Errorf("weights sum to %v, want 1", sum)
	}
}

func TestSimilarity_Properties(t *testing.T) {
	t.Parallel()

	tracks := []TrackFeatures{
		mustExtract(t, track("a", "Night Drive", "DJ Nova", 50)),
		mustExtract(t, track("b", "Night Ride", "DJ Nova", 55)),
		mustExtract(t, track("c", "Sunny Day", "Beach Co", 20)),
		mustExtract(t, track("d", "X", "Y", 0)),
		mustExtract(t, track("e", "Ünïcödé Sōng", "Ärtist", 250)),
		mustExtract(t, track("f", "Night Drive", "DJ Nova", -40)),
	}

	for _, a := range tracks {
		self := Similarity(a, a)
		if math.Abs(self-1) > epsilon {
			t.Errorf("Similarity(%s, %s) = %v, want 1", a.ID, a.ID, self)
		}

		for _, b := range tracks {
			ab := Similarity(a, b)
			ba := Similarity(b, a)
			if ab != ba {
				t.Errorf("Similarity(%s, %s) = %v but reverse = %v", a.ID, b.ID, ab, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("Similarity(%s, %s) = %v, out of [0, 1]", a.ID, b.ID, ab)
			}
		}
	}
}

func TestSimilarity_CloserTrackScoresHigher(t *testing.T) {
	t.Parallel()

	seed := mustExtract(t, track("t1", "Night Drive", "DJ Nova", 50))
	near := mustExtract(t, track("t2", "Night Ride", "DJ Nova", 55))
	far := mustExtract(t, track("t3", "Sunny Day", "Beach Co", 20))

	if Similarity(seed, near) <= Similarity(seed, far) {
		t.Errorf("expected near track to score higher: near=%v far=%v",
			Similarity(seed, near), Similarity(seed, far))
	}
}

func TestCompare_Breakdown(t *testing.T) {
	t.Parallel()

	a := mustExtract(t, track("a", "Night Drive", "DJ Nova", 50))
	b := mustExtract(t, track("b", "Something Else", "DJ Nova", 75))

	got := Compare(a, b)
	if got.Artist != 1 {
		t.Errorf("Artist = %v, want 1 for identical artists", got.Artist)
	}
	if math.Abs(got.Popularity-0.75) > epsilon {
		t.Errorf("Popularity = %v, want 0.75", got.Popularity)
	}

	want := NameWeight*got.Name + ArtistWeight*got.Artist + TokenWeight*got.Tokens + PopularityWeight*got.Popularity
	if math.Abs(got.Total()-want) > epsilon {
		t.Errorf("Total() = %v, want %v", got.Total(), want)
	}
}

func TestPopularitySimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"equal", 40, 40, 1},
		{"ten apart", 50, 60, 0.9},
		{"full range", 0, 100, 0},
		{"beyond range clamps", 0, 250, 0},
		{"negative values", -10, 10, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := popularitySimilarity(tt.a, tt.b); math.Abs(got-tt.want) > epsilon {
				t.Errorf("popularitySimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{1.5, 1},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
