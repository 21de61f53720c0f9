package rollup

import (
	"testing"

	"github.com/storefront-labs/storeboard/pkg/model"
)

func flattenFixture() []model.Row {
	return []model.Row{
		{ID: "c1", Level: model.LevelCompany, Name: "Acme"},
		{ID: "b1", ParentID: "c1", Level: model.LevelBrand, Name: "Burgers"},
		{ID: "a1", ParentID: "b1", Level: model.LevelAddress, Name: "Main St"},
		{ID: "ch1", ParentID: "a1", Level: model.LevelChannel, Name: "Wolt", ChannelID: model.ChannelWolt},
		{ID: "b2", ParentID: "c1", Level: model.LevelBrand, Name: "Pizza"},
		{ID: "c2", Level: model.LevelCompany, Name: "Zeta"},
	}
}

func flatIDs(flat []FlatRow) []string {
	out := make([]string, len(flat))
	for i, fr := range flat {
		out[i] = fr.ID
	}
	return out
}

// TestFlattenAllCollapsed verifies only top-level rows show when nothing
// is expanded.
func TestFlattenAllCollapsed(t *testing.T) {
	flat := Flatten(flattenFixture(), NewExpandState())
	if !equalIDs(flatIDs(flat), "c1", "c2") {
		t.Errorf("expected [c1 c2], got %v", flatIDs(flat))
	}
	for _, fr := range flat {
		if fr.Depth != 0 {
			t.Errorf("top-level row %s has depth %d", fr.ID, fr.Depth)
		}
	}
}

// TestFlattenPartialExpansion verifies an expanded row reveals exactly its
// direct children, and collapsed descendants stay hidden.
func TestFlattenPartialExpansion(t *testing.T) {
	expanded := NewExpandState()
	expanded.Expand("c1")

	flat := Flatten(flattenFixture(), expanded)
	if !equalIDs(flatIDs(flat), "c1", "b1", "b2", "c2") {
		t.Errorf("expected [c1 b1 b2 c2], got %v", flatIDs(flat))
	}
}

// TestFlattenDeepExpansion verifies depth increments per level down a
// fully expanded chain.
func TestFlattenDeepExpansion(t *testing.T) {
	expanded := NewExpandState()
	expanded.Expand("c1")
	expanded.Expand("b1")
	expanded.Expand("a1")

	flat := Flatten(flattenFixture(), expanded)
	if !equalIDs(flatIDs(flat), "c1", "b1", "a1", "ch1", "b2", "c2") {
		t.Fatalf("unexpected order: %v", flatIDs(flat))
	}

	wantDepth := map[string]int{"c1": 0, "b1": 1, "a1": 2, "ch1": 3, "b2": 1, "c2": 0}
	for _, fr := range flat {
		if fr.Depth != wantDepth[fr.ID] {
			t.Errorf("row %s has depth %d, want %d", fr.ID, fr.Depth, wantDepth[fr.ID])
		}
	}
}

// TestFlattenExpandedLeafIsHarmless verifies an expansion entry for a row
// with no children changes nothing.
func TestFlattenExpandedLeafIsHarmless(t *testing.T) {
	expanded := NewExpandState()
	expanded.Expand("c2")

	flat := Flatten(flattenFixture(), expanded)
	if !equalIDs(flatIDs(flat), "c1", "c2") {
		t.Errorf("expected [c1 c2], got %v", flatIDs(flat))
	}
}

// TestFlattenHiddenExpansionPreserved verifies expanding a row whose
// ancestor is collapsed has no visible effect until the ancestor opens.
func TestFlattenHiddenExpansionPreserved(t *testing.T) {
	expanded := NewExpandState()
	expanded.Expand("b1")

	flat := Flatten(flattenFixture(), expanded)
	if !equalIDs(flatIDs(flat), "c1", "c2") {
		t.Fatalf("hidden expansion must not leak rows, got %v", flatIDs(flat))
	}

	expanded.Expand("c1")
	flat = Flatten(flattenFixture(), expanded)
	if !equalIDs(flatIDs(flat), "c1", "b1", "a1", "b2", "c2") {
		t.Errorf("expected a1 revealed via pre-expanded b1, got %v", flatIDs(flat))
	}
}

// TestFlattenNilExpandState verifies a nil state means fully collapsed.
func TestFlattenNilExpandState(t *testing.T) {
	flat := Flatten(flattenFixture(), nil)
	if !equalIDs(flatIDs(flat), "c1", "c2") {
		t.Errorf("expected [c1 c2], got %v", flatIDs(flat))
	}
}

// TestFlattenOrphanAtTopLevel verifies a row with a dangling parent shows
// at depth 0.
func TestFlattenOrphanAtTopLevel(t *testing.T) {
	rows := append(flattenFixture(), model.Row{
		ID: "stray", ParentID: "missing", Level: model.LevelBrand, Name: "Stray",
	})

	flat := Flatten(rows, NewExpandState())
	if !equalIDs(flatIDs(flat), "c1", "c2", "stray") {
		t.Fatalf("expected orphan at top level, got %v", flatIDs(flat))
	}
	if flat[2].Depth != 0 {
		t.Errorf("orphan depth = %d, want 0", flat[2].Depth)
	}
}
