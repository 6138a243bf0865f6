// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

/*
Package cache provides a generic in-memory LRU cache with TTL expiry.

The API layer uses it to memoize recommendation results. Keys include the
catalog model version, so every Train call makes earlier entries
unreachable and they age out through LRU eviction or their TTL.

	results := cache.NewLRU[[]recommend.Recommendation](1024, time.Minute)
	if recs, ok := results.Get(key); ok {
	    return recs
	}
	results.Add(key, recs)

Callers must treat cached values as read-only; the cache stores them as
given and hands the same value to every reader.
*/
package cache
