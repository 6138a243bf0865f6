// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator with custom validators and
// user-friendly error messages, and converts failures to the API error
// format.
//
// # Quick Start
//
//	type recommendRequest struct {
//	    SeedIDs []string `json:"seed_ids" validate:"max=1000,dive,trackid"`
//	    Limit   *int     `json:"limit" validate:"omitempty,gte=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Validators
//
//   - trackid: non-blank string of at most MaxTrackIDLength bytes with no
//     control characters
//
// # Field Names
//
// Error field names come from json tags and include slice indexes, so a bad
// third seed is reported as "seed_ids[2]".
//
// # Thread Safety
//
// GetValidator initializes the validator once; the instance caches struct
// metadata and is safe for concurrent use.
package validation
