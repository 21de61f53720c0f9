package ui

import (
	"strings"
	"testing"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

func testRows() []model.Row {
	return []model.Row{
		{ID: "c1", Level: model.LevelCompany, Name: "Acme Group", Revenue: 1000, RevenueChange: 2.5, Orders: 40},
		{ID: "b1", ParentID: "c1", Level: model.LevelBrand, Name: "Burgers", Revenue: 100, RevenueChange: -3.0, Orders: 10},
		{ID: "b2", ParentID: "c1", Level: model.LevelBrand, Name: "Pizza", Revenue: 200, RevenueChange: 1.0, Orders: 20},
		{ID: "a1", ParentID: "b1", Level: model.LevelAddress, Name: "Main St 1", Revenue: 100, Orders: 10},
		{ID: "ch1", ParentID: "a1", Level: model.LevelChannel, Name: "wolt", ChannelID: model.ChannelWolt, Revenue: 100, Orders: 10},
	}
}

func newTestTable() *TableModel {
	m := NewTableModel(TestTheme(), "€")
	m.SetSize(120, 30)
	m.SetRows(testRows())
	return m
}

func visibleIDs(m *TableModel) []string {
	flat := m.VisibleRows()
	out := make([]string, len(flat))
	for i, fr := range flat {
		out[i] = fr.ID
	}
	return out
}

// TestTableStartsCollapsed verifies only companies show initially.
func TestTableStartsCollapsed(t *testing.T) {
	m := newTestTable()
	ids := visibleIDs(m)
	if len(ids) != 1 || ids[0] != "c1" {
		t.Errorf("expected [c1], got %v", ids)
	}
}

// TestTableToggleExpand verifies expanding the cursor row reveals direct
// children only.
func TestTableToggleExpand(t *testing.T) {
	m := newTestTable()
	m.ToggleExpand()

	ids := visibleIDs(m)
	if len(ids) != 3 || ids[0] != "c1" || ids[1] != "b1" || ids[2] != "b2" {
		t.Errorf("expected [c1 b1 b2], got %v", ids)
	}
}

// TestTableToggleLeafIsNoop verifies toggling a childless row changes
// nothing.
func TestTableToggleLeafIsNoop(t *testing.T) {
	m := newTestTable()
	m.ToggleExpand()
	m.MoveDown()
	m.MoveDown() // b2, a leaf
	before := len(m.VisibleRows())
	m.ToggleExpand()
	if len(m.VisibleRows()) != before {
		t.Error("toggling a leaf should not change the view")
	}
}

// TestTableCollapseCascades verifies re-expanding after a collapse shows
// collapsed children.
func TestTableCollapseCascades(t *testing.T) {
	m := newTestTable()
	m.ExpandAll()
	if len(m.VisibleRows()) != 5 {
		t.Fatalf("expand all should show 5 rows, got %d", len(m.VisibleRows()))
	}

	m.MoveTop()
	m.ToggleExpand() // collapse c1, cascading
	if len(m.VisibleRows()) != 1 {
		t.Fatalf("collapse should leave just c1, got %v", visibleIDs(m))
	}

	m.ToggleExpand() // re-expand
	ids := visibleIDs(m)
	if len(ids) != 3 {
		t.Errorf("re-expand should show collapsed children, got %v", ids)
	}
}

// TestTableSortCycle verifies the header sort cycles through desc, asc
// and off while keeping children under parents.
func TestTableSortCycle(t *testing.T) {
	m := newTestTable()
	m.ToggleExpand()

	m.SortOn(model.ColRevenue)
	if got := m.SortState(); got.Column != model.ColRevenue || got.Direction != rollup.DirDesc {
		t.Fatalf("first click = %+v", got)
	}
	ids := visibleIDs(m)
	if ids[1] != "b2" || ids[2] != "b1" {
		t.Errorf("revenue desc should order [b2 b1], got %v", ids)
	}

	m.SortOn(model.ColRevenue)
	ids = visibleIDs(m)
	if ids[1] != "b1" || ids[2] != "b2" {
		t.Errorf("revenue asc should order [b1 b2], got %v", ids)
	}

	m.SortOn(model.ColRevenue)
	if !m.SortState().Unsorted() {
		t.Error("third click should clear the sort")
	}
	ids = visibleIDs(m)
	if ids[1] != "b1" || ids[2] != "b2" {
		t.Errorf("unsorted should restore input order, got %v", ids)
	}
}

// TestTableCursorSurvivesReload verifies SetRows clamps the cursor and
// keeps expansion by id.
func TestTableCursorSurvivesReload(t *testing.T) {
	m := newTestTable()
	m.ExpandAll()
	m.MoveBottom()

	// Reload with a smaller collection: c1 with one brand.
	m.SetRows(testRows()[:2])
	if m.CursorRow() == nil {
		t.Fatal("cursor should stay on a valid row after reload")
	}
	// c1 was expanded before the reload; it stays expanded.
	ids := visibleIDs(m)
	if len(ids) != 2 || ids[1] != "b1" {
		t.Errorf("expansion should carry across reload, got %v", ids)
	}
}

// TestTableGroupToggleRejectsLast verifies the last group cannot be
// turned off through the table.
func TestTableGroupToggleRejectsLast(t *testing.T) {
	m := newTestTable()
	for i := 1; i < len(model.AllGroups); i++ {
		if !m.ToggleGroup(i) {
			t.Fatalf("toggle %d should succeed", i)
		}
	}
	if m.ToggleGroup(0) {
		t.Error("deactivating the last group must be rejected")
	}
}

// TestTableHorizontalScroll verifies scrolling hides leading metric
// columns but never the name column.
func TestTableHorizontalScroll(t *testing.T) {
	m := newTestTable()

	m.ScrollRight()
	if m.ScrollX() != 1 {
		t.Fatalf("ScrollX = %d, want 1", m.ScrollX())
	}
	view := m.View()
	if !strings.Contains(view, "NAME") {
		t.Error("name column must survive horizontal scroll")
	}
	if strings.Contains(view, "REVENUE ") && !strings.Contains(view, "Δ REV") {
		t.Error("first metric column should scroll off before later ones")
	}

	m.ScrollLeft()
	m.ScrollLeft()
	if m.ScrollX() != 0 {
		t.Errorf("ScrollX should clamp at 0, got %d", m.ScrollX())
	}
}

// TestTableViewRendersIndicators verifies expand marks and the sort
// indicator appear in the rendered output.
func TestTableViewRendersIndicators(t *testing.T) {
	m := newTestTable()
	view := m.View()
	if !strings.Contains(view, markCollapsed) {
		t.Error("collapsed parent should render ▸")
	}

	m.ToggleExpand()
	m.SortOn(model.ColRevenue)
	view = m.View()
	if !strings.Contains(view, markExpanded) {
		t.Error("expanded parent should render ▾")
	}
	if !strings.Contains(view, rollup.DirDesc.Indicator()) {
		t.Error("sorted header should render the direction indicator")
	}
	if !strings.Contains(view, "Acme Group") {
		t.Error("company name should render")
	}
}

// TestTableHeadlessHidesPills verifies headless mode drops the group pill
// row but keeps the header.
func TestTableHeadlessHidesPills(t *testing.T) {
	m := newTestTable()
	m.SetHeadless(true)

	view := m.View()
	if strings.Contains(view, string(model.GroupAdvertising)) {
		t.Error("headless view should not render group pills")
	}
	if !strings.Contains(view, "NAME") {
		t.Error("header should still render in headless mode")
	}
}

// TestTableRestoreState verifies persisted state applies in one shot.
func TestTableRestoreState(t *testing.T) {
	m := NewTableModel(TestTheme(), "€")
	m.SetSize(120, 30)

	expanded := rollup.NewExpandState()
	expanded.Expand("c1")
	groups := rollup.NewGroupSet()
	groups.Toggle(model.GroupPromotions)

	m.RestoreState(expanded, rollup.SortState{Column: model.ColOrders, Direction: rollup.DirDesc}, groups, 2)
	m.SetRows(testRows())

	ids := visibleIDs(m)
	if len(ids) != 3 {
		t.Errorf("restored expansion should show c1's children, got %v", ids)
	}
	if m.SortState().Column != model.ColOrders {
		t.Errorf("restored sort lost: %+v", m.SortState())
	}
	if m.Groups().IsActive(model.GroupPromotions) {
		t.Error("restored group set lost")
	}
	if m.ScrollX() != 2 {
		t.Errorf("restored scroll = %d, want 2", m.ScrollX())
	}
}

// TestTableEmptyCollection verifies the empty state renders and cursor
// calls stay safe.
func TestTableEmptyCollection(t *testing.T) {
	m := NewTableModel(TestTheme(), "€")
	m.SetSize(80, 24)
	m.SetRows(nil)

	if m.CursorRow() != nil {
		t.Error("empty table should have no cursor row")
	}
	m.MoveDown()
	m.ToggleExpand()
	if !strings.Contains(m.View(), "no rows loaded") {
		t.Error("empty table should render the placeholder")
	}
}
