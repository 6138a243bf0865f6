// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package recommend implements a content-based track recommendation engine.
//
// # Architecture
//
// The engine has two parts:
//
//   - Feature extraction: Extract converts a RawTrack into comparable
//     TrackFeatures (normalized name and artist, popularity, a sorted word
//     token set, and the primary artist's genre tags).
//   - Engine: owns the catalog of TrackFeatures. Train ingests batches of
//     raw tracks; Recommend ranks the catalog against a set of seed tracks.
//
// # Similarity
//
// Two tracks are compared with a fixed weighted sum of four sub-scores, each
// bounded to [0, 1]:
//
//	sim(a, b) = 0.30·dice(name_a, name_b) +
//	            0.30·dice(artist_a, artist_b) +
//	            0.20·dice(tokens_a, tokens_b) +
//	            0.20·(1 − |pop_a − pop_b| / 100)
//
// where dice is the bigram Sørensen–Dice coefficient from package textsim.
// The metric is symmetric and sim(a, a) == 1.
//
// # Ranking
//
// A candidate's score is the arithmetic mean of its similarity to every
// resolved seed. Seeds are never returned. Candidates are sorted by
// descending score; ties keep catalog insertion order.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := engine.Train(tracks)
//	recs, err := engine.Recommend([]string{"seed-id"}, recommend.DefaultLimit)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Training holds an exclusive lock
// for the whole batch, while recommendations share a read lock, so a query
// always observes a consistent catalog snapshot.
package recommend
