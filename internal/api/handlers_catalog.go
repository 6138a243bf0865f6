// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tracksim/internal/models"
	"github.com/tomtom215/tracksim/internal/recommend"
)

// CatalogStatus handles GET /api/v1/catalog/status.
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	resp := CatalogStatusResponse{Status: h.engine.GetStatus()}
	if h.results != nil {
		stats := h.results.Stats()
		resp.ResultCache = &stats
	}
	respondSuccess(w, r, http.StatusOK, resp, 0)
}

// ListTracks handles GET /api/v1/catalog/tracks?limit=&offset=.
// IDs are returned in insertion order.
func (h *Handler) ListTracks(w http.ResponseWriter, r *http.Request) {
	req := TrackListRequest{
		Limit:  getIntParam(r, "limit", 100),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ids := h.engine.TrackIDs()
	total := len(ids)

	page := []string{}
	if req.Offset < total {
		end := min(req.Offset+req.Limit, total)
		page = ids[req.Offset:end]
	}

	respondSuccess(w, r, http.StatusOK, TrackListResponse{
		IDs:     page,
		Total:   total,
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: req.Offset+len(page) < total,
	}, 0)
}

// GetTrack handles GET /api/v1/catalog/tracks/{id}.
func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	features, ok := h.engine.Lookup(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, &models.APIError{
			Code:    CodeTrackNotFound,
			Message: "Track not found",
			Details: map[string]interface{}{"id": id},
		}, nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, features, 0)
}

// CompareTracks handles GET /api/v1/catalog/compare?a=&b= and returns the
// similarity of two catalog tracks with its per-signal breakdown.
func (h *Handler) CompareTracks(w http.ResponseWriter, r *http.Request) {
	req := CompareRequest{
		A: r.URL.Query().Get("a"),
		B: r.URL.Query().Get("b"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	var missing []string
	a, okA := h.engine.Lookup(req.A)
	if !okA {
		missing = append(missing, req.A)
	}
	b, okB := h.engine.Lookup(req.B)
	if !okB {
		missing = append(missing, req.B)
	}
	if len(missing) > 0 {
		respondError(w, r, http.StatusNotFound, &models.APIError{
			Code:    CodeTrackNotFound,
			Message: "Track not found",
			Details: map[string]interface{}{"ids": missing},
		}, nil)
		return
	}

	breakdown := recommend.Compare(a, b)
	respondSuccess(w, r, http.StatusOK, CompareResponse{
		A:         req.A,
		B:         req.B,
		Score:     breakdown.Total(),
		Breakdown: breakdown,
	}, 0)
}
