package rollup

import (
	"sort"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// GroupSet tracks which column groups are rendered. The set is never
// empty: deactivating the last active group is rejected as a no-op, so the
// table always shows at least one metric section.
type GroupSet struct {
	active map[model.GroupID]bool
}

// NewGroupSet returns a set with every known group active, the default
// view state.
func NewGroupSet() *GroupSet {
	g := &GroupSet{active: make(map[model.GroupID]bool, len(model.AllGroups))}
	for _, id := range model.AllGroups {
		g.active[id] = true
	}
	return g
}

// IsActive reports whether a group is currently rendered.
func (g *GroupSet) IsActive(id model.GroupID) bool {
	if g == nil {
		return false
	}
	return g.active[id]
}

// Toggle flips a group. It returns false, leaving the set unchanged, when
// the toggle would deactivate the last active group.
func (g *GroupSet) Toggle(id model.GroupID) bool {
	if g.active[id] && len(g.active) == 1 {
		return false
	}
	if g.active[id] {
		delete(g.active, id)
	} else {
		g.active[id] = true
	}
	return true
}

// Len returns the number of active groups.
func (g *GroupSet) Len() int {
	return len(g.active)
}

// Active returns the active group ids in sorted order, for stable
// serialization.
func (g *GroupSet) Active() []model.GroupID {
	ids := make([]model.GroupID, 0, len(g.active))
	for id := range g.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Restore replaces the active set with the given groups. Unknown group
// names are dropped; an empty or entirely-unknown list falls back to the
// all-active default, keeping the non-empty invariant.
func (g *GroupSet) Restore(ids []model.GroupID) {
	next := make(map[model.GroupID]bool, len(ids))
	for _, id := range ids {
		for _, known := range model.AllGroups {
			if id == known {
				next[id] = true
				break
			}
		}
	}
	if len(next) == 0 {
		for _, id := range model.AllGroups {
			next[id] = true
		}
	}
	g.active = next
}

// VisibleColumns returns the column catalog filtered to the active groups.
// The name column (no group) is always included.
func (g *GroupSet) VisibleColumns() []model.Column {
	out := make([]model.Column, 0, len(model.Columns))
	for _, col := range model.Columns {
		if col.Group == "" || g.IsActive(col.Group) {
			out = append(out, col)
		}
	}
	return out
}
