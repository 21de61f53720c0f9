package rollup

import "github.com/storefront-labs/storeboard/pkg/model"

// SortState is the active sort: which column and which direction. The
// zero value is the unsorted state (input order).
type SortState struct {
	Column    model.ColumnID
	Direction Direction
}

// Unsorted reports whether no sort is active.
func (s SortState) Unsorted() bool {
	return s.Column == "" || s.Direction == DirNone
}

// DefaultDirection is the direction a column starts with when it becomes
// the sort column: ascending for the name column, descending for every
// numeric column (high numbers are what merchants look for first).
func DefaultDirection(col model.ColumnID) Direction {
	if col.IsNumeric() {
		return DirDesc
	}
	return DirAsc
}

// Click advances the sort state for a header click on the given column:
//
//	unsorted, or sorted on another column → sorted(col, default direction)
//	sorted(col, desc)                     → sorted(col, asc)
//	sorted(col, asc)                      → unsorted
//
// A numeric column therefore cycles in three clicks (desc → asc → off)
// while the name column cycles in two (asc → off). The machine is a pure
// function of (state, clicked column).
func (s SortState) Click(col model.ColumnID) SortState {
	if s.Unsorted() || s.Column != col {
		return SortState{Column: col, Direction: DefaultDirection(col)}
	}
	if s.Direction == DirDesc {
		return SortState{Column: col, Direction: DirAsc}
	}
	return SortState{}
}
