package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-connections/internal/registry"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

// Stats layout constants
const (
	maxResults    = 100 // Max results to load
	tableMinWidth = 50  // Minimum table width
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// statsTab is one filter of the stats screen. An empty mode shows everything.
type statsTab struct {
	mode  string
	title string
}

// StatsModel is the Bubble Tea model for the results screen.
type StatsModel struct {
	tabs      []statsTab
	tabCursor int
	store     *storage.Store
	results   []storage.Result
	summary   storage.Summary
	loadErr   error
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewStatsModel creates a new stats model.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	tabs := []statsTab{{title: "All modes"}}
	for _, mode := range registry.List() {
		tabs = append(tabs, statsTab{mode: mode.ID, title: mode.Title})
	}

	h := help.New()
	h.Width = width

	m := StatsModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized to the window.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Puzzle", Width: 12},
		{Title: "Mode", Width: 20},
		{Title: "Result", Width: 8},
		{Title: "Mistakes", Width: 8},
	}

	// Give spare width to the puzzle column
	tableWidth := max(m.width-6, tableMinWidth)
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // Cell padding
	}
	if spare := tableWidth - used; spare > 0 {
		columns[1].Width += min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for summary, help and margins
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

// load reads the results and summary for the current tab.
func (m *StatsModel) load() {
	m.results = nil
	m.summary = storage.Summary{}
	m.loadErr = nil

	if m.store != nil {
		mode := m.tabs[m.tabCursor].mode
		if m.summary, m.loadErr = m.store.Summary(mode); m.loadErr == nil {
			m.results, m.loadErr = m.store.RecentResultsForMode(mode, maxResults)
		}
	}

	m.updateTableRows()
}

// updateTableRows fills the table with the loaded results.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		mode := r.Mode
		if info, ok := registry.Info(r.Mode); ok {
			mode = info.Title
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.PuzzleID,
			mode,
			outcome,
			fmt.Sprintf("%d", r.Mistakes),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
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

	// Pass other messages to the table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("STATS - "+m.tabs[m.tabCursor].title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderSummary(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSummary renders the one-line totals for the current tab.
func (m StatsModel) renderSummary() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Cannot read results: " + m.loadErr.Error())
	}

	s := m.summary
	last := "never"
	if !s.LastPlayed.IsZero() {
		last = humanize.Time(s.LastPlayed)
	}
	return fmt.Sprintf("Played %d  |  Won %d (%.0f%%)  |  Avg mistakes %.1f  |  Last played %s",
		s.Played, s.Won, s.WinRate()*100, s.AvgMistakes, last)
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No finished games yet.\nSolve a board to start your history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the stats screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
