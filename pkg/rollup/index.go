// Package rollup implements the hierarchical rollup table engine: building
// a parent→children index from a flat row collection, sorting sibling
// groups without breaking the hierarchy, flattening the tree into display
// order, and managing expand/collapse and sort-cycle state.
//
// The engine is single-threaded and synchronous. Every operation runs to
// completion on the interaction that triggered it; a new row collection is
// a full replacement, never an incremental patch.
package rollup

import "github.com/storefront-labs/storeboard/pkg/model"

// RootKey is the ChildIndex key for rows without a parent. Row ids come
// from the aggregation service and are non-empty, so the empty string is
// free to act as the sentinel.
const RootKey = ""

// ChildIndex maps a parent row id (or RootKey) to its direct children in
// input order. Rebuild it whenever the row collection changes; an index
// built over one ordering must not be reused for another.
type ChildIndex map[string][]model.Row

// BuildIndex builds the parent→children index in a single pass.
// A row whose ParentID does not reference any row in the collection is
// indexed under RootKey: upstream data glitches degrade to top-level
// placement instead of dropping the row from the view.
func BuildIndex(rows []model.Row) ChildIndex {
	known := make(map[string]bool, len(rows))
	for i := range rows {
		known[rows[i].ID] = true
	}

	idx := make(ChildIndex, len(rows)/2+1)
	for i := range rows {
		key := rows[i].ParentID
		if key != RootKey && !known[key] {
			key = RootKey // dangling parent reference
		}
		idx[key] = append(idx[key], rows[i])
	}
	return idx
}

// Roots returns the top-level rows in input order.
func (idx ChildIndex) Roots() []model.Row {
	return idx[RootKey]
}

// Children returns the direct children of a row in input order.
func (idx ChildIndex) Children(id string) []model.Row {
	return idx[id]
}

// Descendants enumerates every descendant id of the given row using an
// explicit stack. Iteration instead of recursion keeps the traversal safe
// for arbitrarily deep input even though the canonical hierarchy is only
// four levels.
func (idx ChildIndex) Descendants(id string) []string {
	var out []string
	stack := make([]string, 0, len(idx[id]))
	for _, child := range idx[id] {
		stack = append(stack, child.ID)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, child := range idx[cur] {
			stack = append(stack, child.ID)
		}
	}
	return out
}
