// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package ingest reads raw track catalogs from JSON.
//
// Two document shapes are accepted: a bare array of tracks, or an object
// with a "tracks" array. Numbers are decoded as json.Number so popularity
// values keep their precision until feature extraction.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tracksim/internal/recommend"
)

// ErrUnsupportedFormat indicates a document that is neither a track array
// nor a {"tracks": [...]} object.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// catalogDocument is the object form of a catalog file.
type catalogDocument struct {
	Tracks []recommend.RawTrack `json:"tracks"`
}

// ReadTracks decodes a catalog document from r.
func ReadTracks(r io.Reader) ([]recommend.RawTrack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnsupportedFormat)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var tracks []recommend.RawTrack
	switch trimmed[0] {
	case '[':
		if err := dec.Decode(&tracks); err != nil {
			return nil, fmt.Errorf("decode track array: %w", err)
		}
	case '{':
		var doc catalogDocument
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode catalog object: %w", err)
		}
		tracks = doc.Tracks
	default:
		return nil, fmt.Errorf("%w: document starts with %q", ErrUnsupportedFormat, trimmed[0])
	}

	if tracks == nil {
		tracks = []recommend.RawTrack{}
	}
	return tracks, nil
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) ([]recommend.RawTrack, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	tracks, err := ReadTracks(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tracks, nil
}

// DedupeByID keeps the first occurrence of every track id and returns the
// number of later duplicates dropped. Tracks with an empty id are kept so
// training can report them as malformed. The input slice is not modified.
func DedupeByID(tracks []recommend.RawTrack) ([]recommend.RawTrack, int) {
	seen := make(map[string]struct{}, len(tracks))
	out := make([]recommend.RawTrack, 0, len(tracks))
	dropped := 0

	for i := range tracks {
		id := tracks[i].ID
		if id != "" {
			if _, dup := seen[id]; dup {
				dropped++
				continue
			}
			seen[id] = struct{}{}
		}
		out = append(out, tracks[i])
	}
	return out, dropped
}
