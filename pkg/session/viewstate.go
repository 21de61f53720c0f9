package session

import (
	"strconv"
	"strings"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

// Store keys, one per persisted facet. These are stable across versions so
// persisted state survives upgrades within a session; renaming one
// silently resets that facet to its default.
const (
	KeyExpanded     = "view.expanded"
	KeySortColumn   = "view.sort.column"
	KeySortDir      = "view.sort.direction"
	KeyActiveGroups = "view.groups"
	KeyScrollOffset = "view.scroll.x"
)

// listSep delimits id lists in the expanded-set and group facets. Row ids
// and group names never contain commas.
const listSep = ","

// ViewState is the aggregate of everything the table persists across
// reloads within a session. Each facet is stored under its own key with no
// transactionality: a facet that fails to parse on load falls back to its
// default independently of the others.
type ViewState struct {
	Expanded     *rollup.ExpandState
	Sort         rollup.SortState
	Groups       *rollup.GroupSet
	ScrollOffset int
}

// DefaultViewState is the state of a fresh session: nothing expanded, no
// sort, all column groups active, zero scroll.
func DefaultViewState() ViewState {
	return ViewState{
		Expanded: rollup.NewExpandState(),
		Groups:   rollup.NewGroupSet(),
	}
}

// LoadViewState rehydrates the view state from the store. Missing or
// unparseable facets keep their defaults, never an error.
func LoadViewState(store Store) ViewState {
	vs := DefaultViewState()

	if raw, ok := store.Get(KeyExpanded); ok && raw != "" {
		vs.Expanded.Restore(strings.Split(raw, listSep))
	}

	col, okCol := store.Get(KeySortColumn)
	dir, okDir := store.Get(KeySortDir)
	if okCol && okDir {
		vs.Sort = parseSort(col, dir)
	}

	if raw, ok := store.Get(KeyActiveGroups); ok && raw != "" {
		parts := strings.Split(raw, listSep)
		ids := make([]model.GroupID, 0, len(parts))
		for _, p := range parts {
			ids = append(ids, model.GroupID(p))
		}
		vs.Groups.Restore(ids)
	}

	if raw, ok := store.Get(KeyScrollOffset); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			vs.ScrollOffset = n
		}
	}

	return vs
}

// parseSort validates a persisted sort pair. Either half failing to
// resolve yields the unsorted default rather than a half-applied sort.
func parseSort(col, dir string) rollup.SortState {
	if col == "" {
		return rollup.SortState{}
	}
	if model.ColumnByID(model.ColumnID(col)) == nil {
		return rollup.SortState{}
	}
	d := rollup.Direction(dir)
	if d != rollup.DirAsc && d != rollup.DirDesc {
		return rollup.SortState{}
	}
	return rollup.SortState{Column: model.ColumnID(col), Direction: d}
}

// SaveExpanded persists the expanded set as a delimited id list.
func SaveExpanded(store Store, expanded *rollup.ExpandState) {
	store.Set(KeyExpanded, strings.Join(expanded.IDs(), listSep))
}

// SaveSort persists the sort column and direction under their own keys.
func SaveSort(store Store, sort rollup.SortState) {
	store.Set(KeySortColumn, string(sort.Column))
	store.Set(KeySortDir, string(sort.Direction))
}

// SaveGroups persists the active column groups as a delimited list.
func SaveGroups(store Store, groups *rollup.GroupSet) {
	ids := groups.Active()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	store.Set(KeyActiveGroups, strings.Join(parts, listSep))
}

// SaveScrollOffset persists the horizontal scroll offset in pixels
// (columns of cells, in terminal terms).
func SaveScrollOffset(store Store, offset int) {
	store.Set(KeyScrollOffset, strconv.Itoa(offset))
}
