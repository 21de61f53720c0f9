package rollup

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// Direction is a sort direction. The zero value means "no active sort".
type Direction string

const (
	DirNone Direction = ""
	DirAsc  Direction = "asc"
	DirDesc Direction = "desc"
)

// Toggle returns the opposite direction. DirNone toggles to itself.
func (d Direction) Toggle() Direction {
	switch d {
	case DirAsc:
		return DirDesc
	case DirDesc:
		return DirAsc
	default:
		return DirNone
	}
}

// Indicator returns the header arrow for a direction.
func (d Direction) Indicator() string {
	switch d {
	case DirAsc:
		return "▲"
	case DirDesc:
		return "▼"
	default:
		return ""
	}
}

// nameCollator compares names case-insensitively and locale-aware.
// collate.Loose additionally ignores diacritic-only differences, which is
// what merchants expect for store names like "Café" vs "Cafe".
var nameCollator = collate.New(language.Und, collate.Loose)

// SortWithHierarchy reorders the row collection so that every sibling
// group is internally sorted by the given column and direction while the
// parent/child structure is untouched: a child never leaves its parent's
// section. With no active sort the input is returned as-is.
//
// Ties keep their relative input order (the sort is stable), so applying
// the same sort twice is a no-op.
func SortWithHierarchy(rows []model.Row, column model.ColumnID, dir Direction) []model.Row {
	if column == "" || dir == DirNone || len(rows) < 2 {
		return rows
	}

	idx := BuildIndex(rows)
	for key := range idx {
		sortSiblings(idx[key], column, dir)
	}

	// Re-linearize: pre-order walk from the sorted top-level group, using
	// an explicit stack so sorted children are emitted directly under
	// their parent.
	out := make([]model.Row, 0, len(rows))
	stack := make([]model.Row, 0, len(rows))
	pushReversed(&stack, idx[RootKey])
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		pushReversed(&stack, idx[cur.ID])
	}
	return out
}

// pushReversed pushes rows onto the stack back-to-front so they pop in
// order.
func pushReversed(stack *[]model.Row, rows []model.Row) {
	for i := len(rows) - 1; i >= 0; i-- {
		*stack = append(*stack, rows[i])
	}
}

// sortSiblings stable-sorts one sibling group in place.
func sortSiblings(rows []model.Row, column model.ColumnID, dir Direction) {
	if len(rows) < 2 {
		return
	}
	desc := dir == DirDesc
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareRows(rows[i], rows[j], column)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareRows compares two rows by the given column in ascending terms:
// negative when a sorts before b. Name comparison is collated; numeric
// comparison reads missing metrics as 0 (model.Row.Metric).
func compareRows(a, b model.Row, column model.ColumnID) int {
	if column == model.ColName {
		return nameCollator.CompareString(a.Name, b.Name)
	}
	av, bv := a.Metric(column), b.Metric(column)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}
