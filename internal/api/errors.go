// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/tracksim/internal/models"
	"github.com/tomtom215/tracksim/internal/recommend"
	"github.com/tomtom215/tracksim/internal/validation"
)

// API error codes.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeBodyTooLarge     = "BODY_TOO_LARGE"
	CodeValidation       = validation.ErrorCode
	CodeInvalidLimit     = "INVALID_LIMIT"
	CodeEmptyInput       = "EMPTY_INPUT"
	CodeNoTrainedData    = "NO_TRAINED_DATA"
	CodeNoValidSeeds     = "NO_VALID_SEEDS"
	CodeNoCandidates     = "NO_CANDIDATES"
	CodeTrackNotFound    = "TRACK_NOT_FOUND"
	CodeNotReady         = "NOT_READY"
	CodeRateLimited      = "RATE_LIMITED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// engineError maps an engine error to an HTTP status and API error.
func engineError(err error) (int, *models.APIError) {
	status, code, message := http.StatusInternalServerError, CodeInternal, "Internal server error"

	switch {
	case errors.Is(err, recommend.ErrInvalidLimit):
		status, code, message = http.StatusBadRequest, CodeInvalidLimit, "Limit must be a positive integer"
	case errors.Is(err, recommend.ErrEmptyInput):
		status, code, message = http.StatusBadRequest, CodeEmptyInput, "Training batch contains no tracks"
	case errors.Is(err, recommend.ErrNoTrainedData):
		status, code, message = http.StatusConflict, CodeNoTrainedData, "The catalog is empty; train tracks first"
	case errors.Is(err, recommend.ErrNoValidSeeds):
		status, code, message = http.StatusUnprocessableEntity, CodeNoValidSeeds, "None of the seed tracks are in the catalog"
	case errors.Is(err, recommend.ErrNoCandidates):
		status, code, message = http.StatusUnprocessableEntity, CodeNoCandidates, "Every catalog track is a seed; nothing left to recommend"
	}

	return status, &models.APIError{Code: code, Message: message}
}

// respondEngineError writes the response for an engine error.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := engineError(err)
	respondError(w, r, status, apiErr, err)
}
