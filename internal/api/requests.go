// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package api

import (
	"github.com/tomtom215/tracksim/internal/cache"
	"github.com/tomtom215/tracksim/internal/recommend"
)

// RecommendRequest is the body of POST /api/v1/recommendations.
//
// Seeds may be given as ids, as raw tracks, or both; only the ids are used,
// in order, ids first. At most 1000 of each are accepted. Limit defaults to
// the configured default limit when omitted.
type RecommendRequest struct {
	SeedIDs []string             `json:"seed_ids" validate:"max=1000,dive,trackid"`
	Seeds   []recommend.RawTrack `json:"seeds" validate:"max=1000"`
	Limit   *int                 `json:"limit"`
}

// seedIDs returns the combined seed ids.
func (req *RecommendRequest) seedIDs() []string {
	ids := make([]string, 0, len(req.SeedIDs)+len(req.Seeds))
	ids = append(ids, req.SeedIDs...)
	return append(ids, recommend.SeedIDs(req.Seeds)...)
}

// RecommendResponse is the payload of a successful recommendation.
type RecommendResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Count           int                        `json:"count"`
	Limit           int                        `json:"limit"`
	Seeds           []string                   `json:"seeds"`
	ModelVersion    int                        `json:"model_version"`
	Cached          bool                       `json:"cached"`
}

// CatalogStatusResponse is the body of GET /api/v1/catalog/status.
type CatalogStatusResponse struct {
	recommend.Status
	ResultCache *cache.Stats `json:"result_cache,omitempty"`
}

// TrainResponse is the payload of a successful training call.
type TrainResponse struct {
	recommend.TrainingSummary
	Received          int `json:"received"`
	DuplicatesDropped int `json:"duplicates_dropped"`
}

// TrackListResponse is the payload of GET /api/v1/catalog/tracks.
type TrackListResponse struct {
	IDs     []string `json:"ids"`
	Total   int      `json:"total"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
	HasMore bool     `json:"has_more"`
}

// TrackListRequest holds the validated query of GET /api/v1/catalog/tracks.
type TrackListRequest struct {
	Limit  int `json:"limit" validate:"min=1,max=1000"`
	Offset int `json:"offset" validate:"min=0"`
}

// CompareRequest holds the validated query of GET /api/v1/catalog/compare.
type CompareRequest struct {
	A string `json:"a" validate:"trackid"`
	B string `json:"b" validate:"trackid"`
}

// CompareResponse explains the similarity of two catalog tracks.
type CompareResponse struct {
	A         string              `json:"a"`
	B         string              `json:"b"`
	Score     float64             `json:"score"`
	Breakdown recommend.Breakdown `json:"breakdown"`
}
