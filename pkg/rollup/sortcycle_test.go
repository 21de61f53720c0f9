package rollup

import (
	"testing"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// TestClickNumericColumnCycle verifies three clicks on a numeric column
// run desc, asc, then back to unsorted.
func TestClickNumericColumnCycle(t *testing.T) {
	var st SortState

	st = st.Click(model.ColRevenue)
	if st.Column != model.ColRevenue || st.Direction != DirDesc {
		t.Fatalf("first click: got (%s, %v), want (revenue, desc)", st.Column, st.Direction)
	}

	st = st.Click(model.ColRevenue)
	if st.Column != model.ColRevenue || st.Direction != DirAsc {
		t.Fatalf("second click: got (%s, %v), want (revenue, asc)", st.Column, st.Direction)
	}

	st = st.Click(model.ColRevenue)
	if !st.Unsorted() {
		t.Fatalf("third click should return to unsorted, got (%s, %v)", st.Column, st.Direction)
	}
}

// TestClickNameColumnCycle verifies the name column starts ascending and
// cycles in two clicks.
func TestClickNameColumnCycle(t *testing.T) {
	var st SortState

	st = st.Click(model.ColName)
	if st.Column != model.ColName || st.Direction != DirAsc {
		t.Fatalf("first click: got (%s, %v), want (name, asc)", st.Column, st.Direction)
	}

	st = st.Click(model.ColName)
	if !st.Unsorted() {
		t.Fatalf("second click should return to unsorted, got (%s, %v)", st.Column, st.Direction)
	}
}

// TestClickSwitchColumnResets verifies clicking a different column starts
// that column at its default direction regardless of prior state.
func TestClickSwitchColumnResets(t *testing.T) {
	st := SortState{Column: model.ColRevenue, Direction: DirAsc}

	st = st.Click(model.ColOrders)
	if st.Column != model.ColOrders || st.Direction != DirDesc {
		t.Errorf("got (%s, %v), want (orders, desc)", st.Column, st.Direction)
	}

	st = st.Click(model.ColName)
	if st.Column != model.ColName || st.Direction != DirAsc {
		t.Errorf("got (%s, %v), want (name, asc)", st.Column, st.Direction)
	}
}

// TestZeroSortStateIsUnsorted verifies the zero value means input order.
func TestZeroSortStateIsUnsorted(t *testing.T) {
	var st SortState
	if !st.Unsorted() {
		t.Error("zero SortState should be unsorted")
	}
}

// TestDefaultDirectionPerColumn verifies every numeric column defaults to
// descending and the name column to ascending.
func TestDefaultDirectionPerColumn(t *testing.T) {
	for _, col := range model.Columns {
		got := DefaultDirection(col.ID)
		want := DirDesc
		if col.ID == model.ColName {
			want = DirAsc
		}
		if got != want {
			t.Errorf("DefaultDirection(%s) = %v, want %v", col.ID, got, want)
		}
	}
}
