// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"errors"
	"fmt"
)

// Errors returned by the engine. Use errors.Is to match them; returned
// errors may wrap these with additional context.
var (
	// ErrMalformedTrack indicates a raw track lacks the fields required for
	// feature extraction. Training counts and skips such tracks.
	ErrMalformedTrack = errors.New("malformed track")

	// ErrEmptyInput indicates an empty training batch when
	// Config.Training.RejectEmpty is set.
	ErrEmptyInput = errors.New("empty training input")

	// ErrNoTrainedData indicates a recommendation was requested against an
	// empty catalog.
	ErrNoTrainedData = errors.New("no trained data")

	// ErrNoValidSeeds indicates none of the seed tracks are in the catalog.
	ErrNoValidSeeds = errors.New("no valid seed tracks")

	// ErrNoCandidates indicates every catalog track was excluded as a seed.
	ErrNoCandidates = errors.New("no candidate tracks")

	// ErrInvalidLimit indicates a non-positive recommendation limit.
	ErrInvalidLimit = errors.New("invalid limit")
)

// Reasons reported for malformed tracks.
const (
	ReasonMissingID     = "missing id"
	ReasonMissingName   = "missing name"
	ReasonMissingArtist = "missing artist"
)

// MalformedTrackError describes why a raw track could not be extracted.
type MalformedTrackError struct {
	// ID is the raw track identifier, possibly empty.
	ID string

	// Reason is one of the Reason* constants.
	Reason string
}

// Error implements the error interface.
func (e *MalformedTrackError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedTrack, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedTrack, e.ID, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedTrack.
func (e *MalformedTrackError) Unwrap() error {
	return ErrMalformedTrack
}
