// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

// catalog is an insertion-ordered map of track features keyed by ID.
// Overwriting an existing ID keeps its original position, so iteration
// order (and therefore ranking tie-breaks) only depends on first insertion.
// Not safe for concurrent use; the Engine serializes access.
type catalog struct {
	index   map[string]int // track_id -> position in entries
	entries []TrackFeatures
}

func newCatalog() *catalog {
	return &catalog{
		index: make(map[string]int),
	}
}

// put inserts or overwrites f. It reports whether the ID was new.
//
//nolint:gocritic // hugeParam: features stored by value
func (c *catalog) put(f TrackFeatures) bool {
	if pos, ok := c.index[f.ID]; ok {
		c.entries[pos] = f
		return false
	}
	c.index[f.ID] = len(c.entries)
	c.entries = append(c.entries, f)
	return true
}

// get returns the stored features for id.
func (c *catalog) get(id string) (TrackFeatures, bool) {
	pos, ok := c.index[id]
	if !ok {
		return TrackFeatures{}, false
	}
	return c.entries[pos], true
}

func (c *catalog) len() int {
	return len(c.entries)
}

// ids returns the catalog identifiers in insertion order.
func (c *catalog) ids() []string {
	out := make([]string, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].ID
	}
	return out
}
