// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package models defines the wire types shared by HTTP handlers.

Every endpoint responds with an APIResponse envelope: Status is "success" or
"error", Data holds the payload, Error holds an APIError on failure, and
Metadata carries the timestamp, request ID and engine time.

Domain types (raw tracks, features, recommendations) live in the recommend
package and are embedded in Data unchanged.
*/
package models
