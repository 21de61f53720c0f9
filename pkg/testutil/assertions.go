package testutil

import (
	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

// TB is the subset of testing.TB the assertions report through. Both
// *testing.T and *rapid.T satisfy it, so the assertions work inside
// property checks with failures attributed to the failing draw.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// AssertRowCount verifies the expected number of rows.
func AssertRowCount(t TB, rows []model.Row, expected int) {
	t.Helper()
	if len(rows) != expected {
		t.Errorf("expected %d rows, got %d", expected, len(rows))
	}
}

// AssertNoDuplicateIDs verifies all row IDs are unique.
func AssertNoDuplicateIDs(t TB, rows []model.Row) {
	t.Helper()
	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.ID] {
			t.Errorf("duplicate row ID: %s", row.ID)
		}
		seen[row.ID] = true
	}
}

// AssertAllValid verifies all rows pass validation.
func AssertAllValid(t TB, rows []model.Row) {
	t.Helper()
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			t.Errorf("row %d (%s) invalid: %v", i, row.ID, err)
		}
	}
}

// AssertHierarchyOrder verifies that in the given row order every row with
// a resolvable parent appears strictly after that parent, and that the
// rows between a parent and any of its emitted descendants are themselves
// descendants of that parent (no foreign row interleaves a subtree).
func AssertHierarchyOrder(t TB, rows []model.Row) {
	t.Helper()

	pos := make(map[string]int, len(rows))
	for i, row := range rows {
		pos[row.ID] = i
	}

	parentOf := make(map[string]string, len(rows))
	for _, row := range rows {
		if _, exists := pos[row.ParentID]; exists {
			parentOf[row.ID] = row.ParentID
		}
	}

	isAncestor := func(anc, id string) bool {
		for cur, ok := parentOf[id]; ok; cur, ok = parentOf[cur] {
			if cur == anc {
				return true
			}
			id = cur
		}
		return false
	}

	for _, row := range rows {
		parent, ok := parentOf[row.ID]
		if !ok {
			continue
		}
		pi, ri := pos[parent], pos[row.ID]
		if ri <= pi {
			t.Errorf("row %s at %d precedes its parent %s at %d", row.ID, ri, parent, pi)
			continue
		}
		// Everything strictly between the parent and this row must sit
		// inside the parent's subtree.
		for i := pi + 1; i < ri; i++ {
			if !isAncestor(parent, rows[i].ID) {
				t.Errorf("row %s at %d interleaves subtree of %s", rows[i].ID, i, parent)
			}
		}
	}
}

// AssertFlatDepths verifies each flattened row's depth is one more than
// its parent's depth (or zero for top-level rows).
func AssertFlatDepths(t TB, flat []rollup.FlatRow) {
	t.Helper()
	depthOf := make(map[string]int, len(flat))
	for _, fr := range flat {
		depthOf[fr.ID] = fr.Depth
	}
	for _, fr := range flat {
		if fr.ParentID == "" {
			if fr.Depth != 0 {
				t.Errorf("top-level row %s has depth %d", fr.ID, fr.Depth)
			}
			continue
		}
		pd, ok := depthOf[fr.ParentID]
		if !ok {
			// Orphan promoted to top level by the index builder.
			if fr.Depth != 0 {
				t.Errorf("orphan row %s has depth %d, want 0", fr.ID, fr.Depth)
			}
			continue
		}
		if fr.Depth != pd+1 {
			t.Errorf("row %s has depth %d, parent %s has %d", fr.ID, fr.Depth, fr.ParentID, pd)
		}
	}
}

// AssertSameOrder verifies two row slices list the same ids in the same
// order.
func AssertSameOrder(t TB, got, want []model.Row) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
		return
	}
	for i := range got {
		if got[i].ID != want[i].ID {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
}
