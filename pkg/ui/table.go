package ui

import (
	"strings"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

// Column layout constants, in terminal cells.
const (
	nameColWidth  = 34
	sparkColWidth = 14
	indentWidth   = 2
)

// expand indicators: collapsed parent, expanded parent, leaf.
const (
	markCollapsed = "▸"
	markExpanded  = "▾"
	markLeaf      = "·"
)

// TableModel is the hierarchical rollup table: the sorted, flattened,
// depth-indented view over the snapshot's row collection. It owns the
// expansion set, sort state, active column groups and horizontal scroll,
// and rebuilds its visible slice whenever any of them change.
type TableModel struct {
	theme    Theme
	keys     KeyMap
	currency string

	rows  []model.Row
	index rollup.ChildIndex

	sortState rollup.SortState
	expanded  *rollup.ExpandState
	groups    *rollup.GroupSet

	series   SeriesProvider
	headless bool

	flat     []rollup.FlatRow
	cursor   int
	scrollX  int // leading metric columns hidden by horizontal scroll
	focusCol int // index into visible columns, the sort target

	width  int
	height int
}

// NewTableModel creates an empty table.
func NewTableModel(theme Theme, currency string) *TableModel {
	return &TableModel{
		theme:    theme,
		keys:     DefaultKeyMap(),
		currency: currency,
		expanded: rollup.NewExpandState(),
		groups:   rollup.NewGroupSet(),
	}
}

// SetRows replaces the row collection and rebuilds the visible slice.
// Expansion entries are keyed by row id, so state carries over to the new
// snapshot; entries for ids that vanished simply stop matching.
func (m *TableModel) SetRows(rows []model.Row) {
	m.rows = rows
	m.index = rollup.BuildIndex(rows)
	m.rebuild()
}

// SetSeries wires the sparkline data provider.
func (m *TableModel) SetSeries(p SeriesProvider) {
	m.series = p
}

// SetHeadless controls headless mode, which drops the group pill row and
// leaves just the header and rows.
func (m *TableModel) SetHeadless(on bool) {
	m.headless = on
}

// SetSize updates the viewport dimensions.
func (m *TableModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// RestoreState applies persisted view state in one shot.
func (m *TableModel) RestoreState(expanded *rollup.ExpandState, sort rollup.SortState, groups *rollup.GroupSet, scrollX int) {
	if expanded != nil {
		m.expanded = expanded
	}
	if groups != nil {
		m.groups = groups
	}
	m.sortState = sort
	m.scrollX = scrollX
	m.clampScroll()
	m.rebuild()
}

// State accessors for persistence.
func (m *TableModel) SortState() rollup.SortState   { return m.sortState }
func (m *TableModel) Expanded() *rollup.ExpandState { return m.expanded }
func (m *TableModel) Groups() *rollup.GroupSet      { return m.groups }
func (m *TableModel) ScrollX() int                  { return m.scrollX }
func (m *TableModel) VisibleRows() []rollup.FlatRow { return m.flat }
func (m *TableModel) RowCollection() []model.Row    { return m.rows }
func (m *TableModel) Index() rollup.ChildIndex      { return m.index }

// rebuild recomputes the visible slice: sort the full collection, then
// flatten through the expansion set. Runs on every structural change; the
// sort is the only O(n log n) step.
func (m *TableModel) rebuild() {
	sorted := rollup.SortWithHierarchy(m.rows, m.sortState.Column, m.sortState.Direction)
	m.flat = rollup.Flatten(sorted, m.expanded)
	m.clampCursor()
}

func (m *TableModel) clampCursor() {
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// CursorRow returns the row under the cursor, or nil for an empty table.
func (m *TableModel) CursorRow() *rollup.FlatRow {
	if len(m.flat) == 0 {
		return nil
	}
	return &m.flat[m.cursor]
}

// MoveUp moves the cursor one row up.
func (m *TableModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor one row down.
func (m *TableModel) MoveDown() {
	if m.cursor < len(m.flat)-1 {
		m.cursor++
	}
}

// MoveTop and MoveBottom jump to the collection edges.
func (m *TableModel) MoveTop()    { m.cursor = 0 }
func (m *TableModel) MoveBottom() { m.cursor = len(m.flat) - 1; m.clampCursor() }

// PageUp and PageDown move by a viewport's worth of rows.
func (m *TableModel) PageUp() {
	m.cursor -= m.pageSize()
	m.clampCursor()
}

func (m *TableModel) PageDown() {
	m.cursor += m.pageSize()
	m.clampCursor()
}

func (m *TableModel) pageSize() int {
	if m.height > 4 {
		return m.height - 4
	}
	return 10
}

// ToggleExpand toggles the row under the cursor. Collapse cascades so a
// later re-expand shows collapsed children.
func (m *TableModel) ToggleExpand() {
	row := m.CursorRow()
	if row == nil {
		return
	}
	if len(m.index.Children(row.ID)) == 0 {
		return
	}
	m.expanded.Toggle(row.ID, m.index)
	m.rebuild()
}

// ExpandAll expands every row that has children.
func (m *TableModel) ExpandAll() {
	for _, row := range m.rows {
		if len(m.index.Children(row.ID)) > 0 {
			m.expanded.Expand(row.ID)
		}
	}
	m.rebuild()
}

// CollapseAll clears the expansion set.
func (m *TableModel) CollapseAll() {
	m.expanded = rollup.NewExpandState()
	m.rebuild()
}

// visibleColumns is the column catalog filtered to active groups.
func (m *TableModel) visibleColumns() []model.Column {
	return m.groups.VisibleColumns()
}

// FocusNextColumn and FocusPrevColumn move the sort focus through the
// visible columns, wrapping at the edges.
func (m *TableModel) FocusNextColumn() {
	cols := m.visibleColumns()
	m.focusCol = (m.focusCol + 1) % len(cols)
}

func (m *TableModel) FocusPrevColumn() {
	cols := m.visibleColumns()
	m.focusCol = (m.focusCol - 1 + len(cols)) % len(cols)
}

// SortFocused advances the sort cycle for the focused column.
func (m *TableModel) SortFocused() {
	cols := m.visibleColumns()
	if m.focusCol >= len(cols) {
		m.focusCol = 0
	}
	m.sortState = m.sortState.Click(cols[m.focusCol].ID)
	m.rebuild()
}

// SortOn advances the sort cycle for a specific column, the programmatic
// equivalent of a header click.
func (m *TableModel) SortOn(col model.ColumnID) {
	m.sortState = m.sortState.Click(col)
	m.rebuild()
}

// ToggleGroup toggles the nth column group (0-based). Returns false when
// the toggle would deactivate the last active group.
func (m *TableModel) ToggleGroup(n int) bool {
	if n < 0 || n >= len(model.AllGroups) {
		return false
	}
	ok := m.groups.Toggle(model.AllGroups[n])
	if ok {
		m.clampFocus()
		m.clampScroll()
	}
	return ok
}

func (m *TableModel) clampFocus() {
	if cols := m.visibleColumns(); m.focusCol >= len(cols) {
		m.focusCol = len(cols) - 1
	}
}

// ScrollLeft and ScrollRight shift which metric columns are visible. The
// name column never scrolls off.
func (m *TableModel) ScrollLeft() {
	if m.scrollX > 0 {
		m.scrollX--
	}
}

func (m *TableModel) ScrollRight() {
	m.scrollX++
	m.clampScroll()
}

func (m *TableModel) clampScroll() {
	metricCols := len(m.visibleColumns()) - 1
	if m.scrollX > metricCols-1 {
		m.scrollX = metricCols - 1
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
}

// colWidth returns the render width for a column.
func colWidth(col model.Column) int {
	w := visibleWidth(col.Title) + 2
	if w < 11 {
		w = 11
	}
	return w
}

// View renders the group pills, header row and visible rows.
func (m *TableModel) View() string {
	var b strings.Builder

	if !m.headless {
		b.WriteString(m.renderGroupPills())
		b.WriteByte('\n')
	}
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	if len(m.flat) == 0 {
		b.WriteString(m.theme.MutedText.Render("no rows loaded"))
		return b.String()
	}

	top, bottom := m.viewportBounds()
	for i := top; i < bottom; i++ {
		b.WriteString(m.renderRow(i))
		if i < bottom-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// viewportBounds keeps the cursor inside the rendered window.
func (m *TableModel) viewportBounds() (int, int) {
	visible := m.pageSize()
	if visible >= len(m.flat) {
		return 0, len(m.flat)
	}
	top := m.cursor - visible/2
	if top < 0 {
		top = 0
	}
	bottom := top + visible
	if bottom > len(m.flat) {
		bottom = len(m.flat)
		top = bottom - visible
	}
	return top, bottom
}

// renderGroupPills shows one pill per column group, active ones filled.
func (m *TableModel) renderGroupPills() string {
	parts := make([]string, 0, len(model.AllGroups))
	for _, id := range model.AllGroups {
		label := string(id)
		if m.groups.IsActive(id) {
			parts = append(parts, m.theme.GroupActive.Render(label))
		} else {
			parts = append(parts, m.theme.GroupInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// scrolledColumns returns the visible columns after horizontal scroll:
// the name column plus the metric columns from scrollX on.
func (m *TableModel) scrolledColumns() []model.Column {
	cols := m.visibleColumns()
	out := []model.Column{cols[0]}
	metric := cols[1:]
	if m.scrollX < len(metric) {
		out = append(out, metric[m.scrollX:]...)
	}
	return out
}

func (m *TableModel) renderHeader() string {
	var b strings.Builder
	cols := m.scrolledColumns()
	focused := m.focusedColumnID()

	for i, col := range cols {
		title := col.Title
		if m.sortState.Column == col.ID && !m.sortState.Unsorted() {
			title += " " + m.sortState.Direction.Indicator()
		}

		style := m.theme.Header
		if m.sortState.Column == col.ID && !m.sortState.Unsorted() {
			style = m.theme.HeaderSorted
		}
		if col.ID == focused {
			style = style.Underline(true)
		}

		if i == 0 {
			b.WriteString(style.Render(padRight(title, nameColWidth)))
		} else {
			b.WriteString(style.Render(padLeft(title, colWidth(col))))
		}
	}
	if m.series != nil {
		b.WriteString(m.theme.Header.Render(padLeft("TREND", sparkColWidth)))
	}
	return b.String()
}

func (m *TableModel) focusedColumnID() model.ColumnID {
	cols := m.visibleColumns()
	if m.focusCol >= len(cols) {
		return cols[0].ID
	}
	return cols[m.focusCol].ID
}

func (m *TableModel) renderRow(i int) string {
	fr := m.flat[i]
	cols := m.scrolledColumns()

	var b strings.Builder
	b.WriteString(m.renderNameCell(fr))

	for _, col := range cols[1:] {
		b.WriteString(m.renderMetricCell(fr, col))
	}

	if m.series != nil {
		series := m.series.SeriesFor(fr.ID)
		cell := ""
		if len(series) > 0 {
			cell = Sparkline(series, sparkColWidth-3) + " " + TrendArrow(Trend(series))
		}
		b.WriteString(m.theme.Sparkline.Render(padLeft(cell, sparkColWidth)))
	}

	line := b.String()
	if i == m.cursor {
		return m.theme.Selected.Render(line)
	}
	return line
}

// renderNameCell draws the indented, marked, truncated name column.
func (m *TableModel) renderNameCell(fr rollup.FlatRow) string {
	mark := markLeaf
	if len(m.index.Children(fr.ID)) > 0 {
		if m.expanded.IsExpanded(fr.ID) {
			mark = markExpanded
		} else {
			mark = markCollapsed
		}
	}

	indent := strings.Repeat(" ", fr.Depth*indentWidth)
	name := fr.Name
	if fr.Level == model.LevelChannel && fr.ChannelID != "" {
		name = ChannelLabel(fr.ChannelID)
	}
	if fr.Subtitle != "" {
		name += " " + fr.Subtitle
	}

	cell := truncate(indent+mark+" "+name, nameColWidth-1)

	switch {
	case fr.Level == model.LevelCompany:
		return m.theme.CompanyRow.Render(padRight(cell, nameColWidth))
	case fr.Level == model.LevelChannel:
		return m.theme.Renderer.NewStyle().
			Foreground(m.theme.ChannelColor(fr.ChannelID)).
			Render(padRight(cell, nameColWidth))
	default:
		return m.theme.Base.Render(padRight(cell, nameColWidth))
	}
}

// renderMetricCell formats one numeric cell per the column's flags.
func (m *TableModel) renderMetricCell(fr rollup.FlatRow, col model.Column) string {
	v := fr.Metric(col.ID)

	var cell string
	switch {
	case col.Money:
		cell = FormatMoney(v, m.currency)
	case col.Percent:
		cell = FormatPercent(v, col.ID == model.ColRevenueChange)
	case col.ID == model.ColROAS || col.ID == model.ColRating:
		cell = FormatDecimal(v)
	default:
		cell = FormatCount(v)
	}

	padded := padLeft(cell, colWidth(col))
	if col.ID == model.ColRevenueChange {
		switch {
		case v > 0:
			return m.theme.PositiveText.Render(padded)
		case v < 0:
			return m.theme.NegativeText.Render(padded)
		}
	}
	return m.theme.Base.Render(padded)
}
