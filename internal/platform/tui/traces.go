package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
	"github.com/vovakirdan/flappy-arcade/internal/trace"
)

// Trace browser layout constants
const (
	tracesTableMinHeight = 5
	maxTraces            = 100
)

// TracesKeyMap defines the key bindings for the trace browser.
type TracesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TracesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TracesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultTracesKeyMap returns default key bindings.
func DefaultTracesKeyMap() TracesKeyMap {
	return TracesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TracesModel is the Bubble Tea model for browsing recorded sessions.
type TracesModel struct {
	store    *storage.Store
	traces   []storage.TraceSummary
	table    table.Model
	help     help.Model
	keys     TracesKeyMap
	width    int
	height   int
	status   string
	quitting bool
}

// NewTracesModel creates a new trace browser.
func NewTracesModel(store *storage.Store, width, height int) TracesModel {
	h := help.New()
	h.ShowAll = false

	m := TracesModel{
		store:  store,
		keys:   DefaultTracesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadTraces()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *TracesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Recorded", Width: 14},
		{Title: "Seed", Width: 20},
		{Title: "Length", Width: 9},
		{Title: "Inputs", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, tracesTableMinHeight)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadTraces reloads the trace list from the store.
func (m *TracesModel) loadTraces() {
	if m.store == nil {
		m.traces = nil
		m.updateTableRows()
		return
	}

	traces, err := m.store.ListTraces(maxTraces)
	if err != nil {
		m.status = "could not load traces: " + err.Error()
		m.traces = nil
	} else {
		m.traces = traces
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current traces.
func (m *TracesModel) updateTableRows() {
	m.table.SetRows(TraceRows(m.traces))
	m.table.GotoTop()
}

// TraceRows formats summaries as table rows.
func TraceRows(traces []storage.TraceSummary) []table.Row {
	rows := make([]table.Row, len(traces))
	for i, t := range traces {
		rows[i] = table.Row{
			strconv.FormatInt(t.ID, 10),
			t.CreatedAt.Format("Jan 02 15:04"),
			strconv.FormatInt(t.Seed, 10),
			t.Duration.Truncate(100 * time.Millisecond).String(),
			strconv.Itoa(t.Inputs),
		}
	}
	return rows
}

// selected returns the trace under the cursor.
func (m TracesModel) selected() (storage.TraceSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.traces) {
		return storage.TraceSummary{}, false
	}
	return m.traces[i], true
}

// Init initializes the trace browser.
func (m TracesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the trace browser.
func (m TracesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if sel, ok := m.selected(); ok {
				m.status = ReplaySummary(m.store, sel.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if sel, ok := m.selected(); ok && m.store != nil {
				if err := m.store.DeleteTrace(sel.ID); err != nil {
					m.status = "delete failed: " + err.Error()
				} else {
					m.status = fmt.Sprintf("deleted trace %d", sel.ID)
				}
				m.loadTraces()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// ReplaySummary re-simulates trace id and describes the outcome.
func ReplaySummary(store *storage.Store, id int64) string {
	if store == nil {
		return "no trace database"
	}
	tr, err := store.LoadTrace(id)
	if err != nil {
		return err.Error()
	}
	res, err := trace.Replay(tr)
	if errors.Is(err, trace.ErrDiverged) {
		return fmt.Sprintf("trace %d diverged after %d events: %v", id, res.Events, err)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("trace %d: %d games, final score %d (%s), %d events over %s",
		id, res.Games, res.Final.Score, res.Final.State, res.Events, res.Elapsed.Truncate(time.Millisecond))
}

// View renders the trace browser.
func (m TracesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDED SESSIONS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m TracesModel) renderTableContent() string {
	if len(m.traces) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay with --record to capture one.")
	}

	return m.table.View()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunTraces runs the trace browser.
func RunTraces(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewTracesModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
