// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tracksim/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of catalog state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 once the catalog holds at least one track, 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.engine.GetStatus()
	data := map[string]interface{}{
		"ready":         status.TrackCount > 0,
		"catalog_size":  status.TrackCount,
		"model_version": status.ModelVersion,
	}

	if status.TrackCount == 0 {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     data,
			Metadata: newMetadata(r, 0),
			Error: &models.APIError{
				Code:    CodeNotReady,
				Message: "The catalog is empty",
			},
		})
		return
	}

	respondSuccess(w, r, http.StatusOK, data, 0)
}

// HealthPerformance returns per-route latency statistics over the recent
// request window.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"endpoints": h.perfMon.Stats(),
		"recent":    h.perfMon.Recent(getIntParam(r, "recent", 20)),
	}, 0)
}
