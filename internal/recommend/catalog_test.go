// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"reflect"
	"testing"
)

func TestCatalog_PutGet(t *testing.T) {
	t.Parallel()

	c := newCatalog()
	if c.len() != 0 {
		t.Fatalf("new catalog len = %d, want 0", c.len())
	}

	if !c.put(TrackFeatures{ID: "a", Name: "first"}) {
		t.Error("put(a) reported existing ID")
	}
	if !c.put(TrackFeatures{ID: "b", Name: "second"}) {
		t.Error("put(b) reported existing ID")
	}
	if c.put(TrackFeatures{ID: "a", Name: "replaced"}) {
		t.Error("put(a) again reported a new ID")
	}

	if c.len() != 2 {
		t.Errorf("len = %d, want 2", c.len())
	}

	got, ok := c.get("a")
	if !ok || got.Name != "replaced" {
		t.Errorf("get(a) = %+v, %v; want replaced entry", got, ok)
	}

	if _, ok := c.get("missing"); ok {
		t.Error("get(missing) found an entry")
	}
}

func TestCatalog_OverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	c := newCatalog()
	for _, id := range []string{"a", "b", "c"} {
		c.put(TrackFeatures{ID: id})
	}
	c.put(TrackFeatures{ID: "a", Name: "again"})
	c.put(TrackFeatures{ID: "d"})

	want := []string{"a", "b", "c", "d"}
	if got := c.ids(); !reflect.DeepEqual(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}
}
