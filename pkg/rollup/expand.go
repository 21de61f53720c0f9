package rollup

import "sort"

// ExpandState is the set of row ids whose children are currently visible.
// It is keyed by id, not structural position, so it survives wholesale
// replacement of the row collection: ids that no longer resolve are simply
// inert until the id reappears.
type ExpandState struct {
	expanded map[string]bool
}

// NewExpandState returns an empty expand state (everything collapsed).
func NewExpandState() *ExpandState {
	return &ExpandState{expanded: make(map[string]bool)}
}

// IsExpanded reports whether the row's children are visible. A nil state
// reads as fully collapsed.
func (s *ExpandState) IsExpanded(id string) bool {
	if s == nil {
		return false
	}
	return s.expanded[id]
}

// Toggle flips the expansion of a row.
//
// Expanding adds only the row itself: previously collapsed children stay
// collapsed. Collapsing cascades, removing every descendant id as well, so
// a later re-expand cannot resurrect stale "ghost" expansion deep in a
// subtree whose rows may have been replaced under the same ids.
func (s *ExpandState) Toggle(id string, idx ChildIndex) {
	if s.expanded[id] {
		s.Collapse(id, idx)
		return
	}
	s.expanded[id] = true
}

// Collapse removes a row and all of its descendants from the expanded set.
func (s *ExpandState) Collapse(id string, idx ChildIndex) {
	delete(s.expanded, id)
	for _, desc := range idx.Descendants(id) {
		delete(s.expanded, desc)
	}
}

// Expand marks a single row expanded without touching its descendants.
func (s *ExpandState) Expand(id string) {
	s.expanded[id] = true
}

// Len returns the number of expanded ids.
func (s *ExpandState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.expanded)
}

// IDs returns the expanded ids in sorted order, for stable serialization.
func (s *ExpandState) IDs() []string {
	if s == nil || len(s.expanded) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Restore replaces the expanded set with the given ids. Used when
// rehydrating persisted view state; unknown ids are kept (they are inert
// until the row collection contains them again).
func (s *ExpandState) Restore(ids []string) {
	s.expanded = make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" {
			s.expanded[id] = true
		}
	}
}
