package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storefront-labs/storeboard/internal/datasource"
	"github.com/storefront-labs/storeboard/pkg/config"
	"github.com/storefront-labs/storeboard/pkg/debug"
	"github.com/storefront-labs/storeboard/pkg/export"
	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/session"
	"github.com/storefront-labs/storeboard/pkg/version"
	"github.com/storefront-labs/storeboard/pkg/watcher"
)

// FileChangedMsg is sent when the snapshot changes on disk.
type FileChangedMsg struct{}

// snapshotLoadedMsg carries the result of an async snapshot load.
type snapshotLoadedMsg struct {
	snap *datasource.Snapshot
	err  error
}

// statusClearMsg clears a transient footer message.
type statusClearMsg struct{ seq int }

// Model is the root bubbletea model: the rollup table plus the help
// overlay, snapshot lifecycle and session persistence.
type Model struct {
	theme Theme
	keys  KeyMap
	cfg   config.Config

	table *TableModel
	store session.Store

	dataPath string
	snapshot *datasource.Snapshot
	watch    *watcher.Watcher

	width  int
	height int
	ready  bool

	showHelp  bool
	helpCache string

	status    string
	statusSeq int

	err error
}

// NewModel builds the root model. The store carries the per-session view
// state; pass a MemoryStore to start fresh.
func NewModel(cfg config.Config, store session.Store, dataPath string) *Model {
	theme := DefaultTheme(lipgloss.NewRenderer(nil))

	table := NewTableModel(theme, cfg.UI.Currency)
	table.SetHeadless(cfg.UI.Headless)

	vs := session.LoadViewState(store)
	// Configured default groups apply only until the session has saved its
	// own; after that the session wins.
	if _, ok := store.Get(session.KeyActiveGroups); !ok && len(cfg.UI.DefaultGroups) > 0 {
		ids := make([]model.GroupID, len(cfg.UI.DefaultGroups))
		for i, g := range cfg.UI.DefaultGroups {
			ids[i] = model.GroupID(g)
		}
		vs.Groups.Restore(ids)
	}
	table.RestoreState(vs.Expanded, vs.Sort, vs.Groups, vs.ScrollOffset)

	return &Model{
		theme:    theme,
		keys:     DefaultKeyMap(),
		cfg:      cfg,
		table:    table,
		store:    store,
		dataPath: dataPath,
	}
}

// SetWatcher wires a started file watcher whose change channel feeds
// FileChangedMsg into the program.
func (m *Model) SetWatcher(w *watcher.Watcher) {
	m.watch = w
}

// Init loads the first snapshot and, if a watcher is wired, starts
// listening for changes.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSnapshotCmd()}
	if m.watch != nil {
		cmds = append(cmds, m.waitForChangeCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadSnapshotCmd() tea.Cmd {
	path := m.dataPath
	return func() tea.Msg {
		snap, err := datasource.Load(path)
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

func (m *Model) waitForChangeCmd() tea.Cmd {
	ch := m.watch.Changed()
	return func() tea.Msg {
		<-ch
		return FileChangedMsg{}
	}
}

// setStatus shows a transient footer message for a few seconds.
func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.table.SetSize(msg.Width, msg.Height)
		m.helpCache = ""
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snapshot = msg.snap
		m.table.SetRows(msg.snap.Rows)
		m.table.SetSeries(msg.snap)
		debug.Log("ui: snapshot applied, %d rows", len(msg.snap.Rows))
		return m, nil

	case FileChangedMsg:
		// Reload in place; expansion and sort carry over by row id.
		cmds := []tea.Cmd{m.loadSnapshotCmd(), m.setStatus("snapshot reloaded")}
		if m.watch != nil {
			cmds = append(cmds, m.waitForChangeCmd())
		}
		return m, tea.Batch(cmds...)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		m.table.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.table.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.table.MoveTop()
	case key.Matches(msg, m.keys.End):
		m.table.MoveBottom()

	case key.Matches(msg, m.keys.Toggle):
		m.table.ToggleExpand()
		session.SaveExpanded(m.store, m.table.Expanded())
	case key.Matches(msg, m.keys.ExpandAll):
		m.table.ExpandAll()
		session.SaveExpanded(m.store, m.table.Expanded())
	case key.Matches(msg, m.keys.Collapse):
		m.table.CollapseAll()
		session.SaveExpanded(m.store, m.table.Expanded())

	case key.Matches(msg, m.keys.PrevCol):
		m.table.FocusPrevColumn()
	case key.Matches(msg, m.keys.NextCol):
		m.table.FocusNextColumn()
	case key.Matches(msg, m.keys.Sort):
		m.table.SortFocused()
		session.SaveSort(m.store, m.table.SortState())

	case key.Matches(msg, m.keys.ScrollLeft):
		m.table.ScrollLeft()
		session.SaveScrollOffset(m.store, m.table.ScrollX())
	case key.Matches(msg, m.keys.ScrollRght):
		m.table.ScrollRight()
		session.SaveScrollOffset(m.store, m.table.ScrollX())

	case key.Matches(msg, m.keys.Groups):
		n := int(msg.Runes[0] - '1')
		if !m.table.ToggleGroup(n) {
			return m, m.setStatus("at least one column group must stay active")
		}
		session.SaveGroups(m.store, m.table.Groups())

	case key.Matches(msg, m.keys.CopyID):
		if row := m.table.CursorRow(); row != nil {
			if err := clipboard.WriteAll(row.ID); err != nil {
				return m, m.setStatus("clipboard unavailable")
			}
			return m, m.setStatus(fmt.Sprintf("copied %s", row.ID))
		}

	case key.Matches(msg, m.keys.Export):
		path := "storeboard-export.csv"
		err := export.WriteCSVFile(path, m.table.VisibleRows(), m.table.Groups().VisibleColumns())
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("export failed: %v", err))
		}
		return m, m.setStatus(fmt.Sprintf("exported visible view to %s", path))

	case key.Matches(msg, m.keys.Reload):
		return m, tea.Batch(m.loadSnapshotCmd(), m.setStatus("reloading"))
	}

	return m, nil
}

func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.showHelp {
		if m.helpCache == "" {
			m.helpCache = RenderHelp(m.width)
		}
		return m.helpCache
	}
	if m.err != nil {
		return m.theme.NegativeText.Render(fmt.Sprintf("error: %v", m.err)) +
			"\n\n" + m.theme.MutedText.Render("r to retry, q to quit")
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderFooter() string {
	parts := []string{VersionLine(version.Version)}

	if m.snapshot != nil {
		parts = append(parts, fmt.Sprintf("%d rows", len(m.snapshot.Rows)))
		parts = append(parts, fmt.Sprintf("loaded %s", FormatTimeRel(m.snapshot.LoadedAt)))
		parts = append(parts, string(m.snapshot.Source.Type))
	}
	if m.watch != nil && m.watch.IsPolling() {
		parts = append(parts, "polling")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	} else {
		parts = append(parts, "? help")
	}

	return m.theme.Footer.Render(strings.Join(parts, "  ·  "))
}
