package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connections/internal/puzzle"
	"github.com/vovakirdan/tui-connections/internal/registry"
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	ModeID      string // Registered mode to start; empty for the stats entry
	PuzzleID    string // Board to play; empty lets the mode choose
	Title       string
	Description string
	Stats       bool // Opens the results screen instead of a game
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model listing the modes and every board in pack.
func NewMenuModel(pack []puzzle.Puzzle, width, height int) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes)+len(pack)+1)

	for _, mode := range modes {
		items = append(items, MenuItem{
			ModeID:      mode.ID,
			Title:       mode.Title,
			Description: mode.Description,
		})
	}

	// Specific boards are played in the classic mode
	if registry.Exists(classicModeID) {
		for _, p := range pack {
			items = append(items, MenuItem{
				ModeID:      classicModeID,
				PuzzleID:    p.ID,
				Title:       p.Title,
				Description: "Board " + p.ID,
			})
		}
	}

	items = append(items, MenuItem{
		Title:       "Stats",
		Description: "Finished games and win rate",
		Stats:       true,
	})

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// classicModeID is the mode that plays a chosen board.
const classicModeID = "connections"

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Stats):
		selected := m.items[len(m.items)-1]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O N N E C T I O N S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(descStyle.Render("Create four groups of four!"), m.width))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		item := m.items[i]
		line := fmt.Sprintf("  %-24s %s", item.Title, descStyle.Render(item.Description))
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %-24s", item.Title)) + " " + descStyle.Render(item.Description)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// visibleRange returns the item window that fits the terminal, keeping the cursor visible.
func (m MenuModel) visibleRange() (start, end int) {
	rows := m.height - 8 // Title, spacing and help
	if rows <= 0 || rows >= len(m.items) {
		return 0, len(m.items)
	}
	start = max(m.cursor-rows+1, 0)
	return start, start + rows
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured without escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID     string
	PuzzleID   string
	WantsStats bool
	Quit       bool
	Width      int
	Height     int
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(pack []puzzle.Puzzle, width, height int) (MenuResult, error) {
	model := NewMenuModel(pack, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Width: m.width, Height: m.height}

	switch {
	case m.selected == nil:
		result.Quit = true
	case m.selected.Stats:
		result.WantsStats = true
	default:
		result.ModeID = m.selected.ModeID
		result.PuzzleID = m.selected.PuzzleID
	}
	return result
}
