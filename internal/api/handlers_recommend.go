// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/tracksim/internal/logging"
	"github.com/tomtom215/tracksim/internal/metrics"
	"github.com/tomtom215/tracksim/internal/models"
	"github.com/tomtom215/tracksim/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
//
// Non-positive limits are passed to the engine so they surface as
// INVALID_LIMIT exactly like an engine caller would see them; limits above
// the configured maximum are rejected here.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondBodyError(w, r, err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	limits := h.engine.Config().Limits
	limit := limits.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit > limits.MaxLimit {
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    CodeInvalidLimit,
			Message: fmt.Sprintf("Limit must be between 1 and %d", limits.MaxLimit),
			Details: map[string]interface{}{"max": limits.MaxLimit, "received": limit},
		}, nil)
		return
	}

	seeds := req.seedIDs()
	version := h.engine.GetStatus().ModelVersion

	start := time.Now()
	recs, cached, err := h.recommend(seeds, limit, version)
	elapsed := time.Since(start)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("seeds", len(seeds)).
		Int("limit", limit).
		Int("returned", len(recs)).
		Bool("cached", cached).
		Dur("duration", elapsed).
		Msg("Recommendations served")

	respondSuccess(w, r, http.StatusOK, RecommendResponse{
		Recommendations: recs,
		Count:           len(recs),
		Limit:           limit,
		Seeds:           seeds,
		ModelVersion:    version,
		Cached:          cached,
	}, elapsed)
}

// recommend consults the result cache before asking the engine. Only
// successful results are cached.
func (h *Handler) recommend(seeds []string, limit, version int) ([]recommend.Recommendation, bool, error) {
	if h.results == nil {
		recs, err := h.engine.Recommend(seeds, limit)
		return recs, false, err
	}

	key := resultCacheKey(seeds, limit, version)
	if recs, ok := h.results.Get(key); ok {
		metrics.RecordRecommendCacheLookup(true)
		return recs, true, nil
	}
	metrics.RecordRecommendCacheLookup(false)

	recs, err := h.engine.Recommend(seeds, limit)
	if err != nil {
		return nil, false, err
	}
	h.results.Add(key, recs)
	return recs, false, nil
}

// resultCacheKey identifies a query against one catalog version. Seed order
// is kept because it is part of the request echoed back to the client.
func resultCacheKey(seeds []string, limit, version int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(version))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(limit))
	for _, id := range seeds {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(id))
	}
	return b.String()
}
