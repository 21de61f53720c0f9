package rollup

import "github.com/storefront-labs/storeboard/pkg/model"

// FlatRow is a display row: the underlying row plus its nesting depth in
// the rendered table.
type FlatRow struct {
	model.Row
	Depth int
}

// Flatten performs a pre-order walk over the row collection and returns
// the rows to display, in order, each with its depth. Children of a row
// are emitted only when its id is in the expanded set.
//
// The input must already carry the desired ordering (typically the output
// of SortWithHierarchy); Flatten builds its own index over it so sibling
// order is preserved exactly. Collapsed subtrees are never visited, so the
// cost is bounded by the number of emitted rows, not the collection size.
func Flatten(rows []model.Row, expanded *ExpandState) []FlatRow {
	if len(rows) == 0 {
		return nil
	}
	idx := BuildIndex(rows)

	type frame struct {
		row   model.Row
		depth int
	}
	out := make([]FlatRow, 0, len(idx[RootKey]))
	stack := make([]frame, 0, len(idx[RootKey]))

	push := func(rows []model.Row, depth int) {
		for i := len(rows) - 1; i >= 0; i-- {
			stack = append(stack, frame{row: rows[i], depth: depth})
		}
	}

	push(idx[RootKey], 0)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, FlatRow{Row: cur.row, Depth: cur.depth})
		if expanded.IsExpanded(cur.row.ID) {
			push(idx[cur.row.ID], cur.depth+1)
		}
	}
	return out
}
