// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/tracksim/internal/ingest"
	"github.com/tomtom215/tracksim/internal/logging"
	"github.com/tomtom215/tracksim/internal/models"
)

// TrainTracks handles POST /api/v1/tracks/train.
//
// The body is {"tracks": [...]} or a bare track array. Duplicate ids within
// the batch are dropped (first occurrence wins) before training; malformed
// tracks are skipped by the engine and reported in the summary.
func (h *Handler) TrainTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := ingest.ReadTracks(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		respondBodyError(w, r, err)
		return
	}

	maxBatch := h.engine.Config().Training.MaxBatchSize
	if len(tracks) > maxBatch {
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    CodeValidation,
			Message: fmt.Sprintf("tracks must contain at most %d items", maxBatch),
			Details: map[string]interface{}{
				"field":    "tracks",
				"max":      maxBatch,
				"received": len(tracks),
			},
		}, nil)
		return
	}

	unique, dropped := ingest.DedupeByID(tracks)

	start := time.Now()
	summary, err := h.engine.Train(unique)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("received", len(tracks)).
		Int("duplicates", dropped).
		Int("accepted", summary.Accepted).
		Int("skipped", summary.Skipped).
		Int("catalog_size", summary.CatalogSize).
		Msg("Training batch applied")

	respondSuccess(w, r, http.StatusOK, TrainResponse{
		TrainingSummary:   summary,
		Received:          len(tracks),
		DuplicatesDropped: dropped,
	}, time.Since(start))
}
