package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/registry"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without starting over.
type resizer interface {
	Resize(width, height int)
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Store         *storage.Store // Results history; nil disables saving
	Palette       Palette        // Board styles; nil uses the default theme
	Logger        *log.Logger    // Warnings; nil discards them
	ScreenshotDir string         // Where ctrl+s writes; empty uses ~/.connections/screenshots
}

// Model is the Bubble Tea model for playing one game mode.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	opts        Options
	keys        KeyMap
	help        help.Model
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	sessionID   string // Identifies the current game in the results history
	quitting    bool
	goingBack   bool
	resultSaved bool // Whether the result has been saved for the current game over
	width       int
	height      int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		sessionID:  uuid.NewString(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW

	// Start the first game here rather than in Init, which has a value receiver
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height), nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the board to a new window size. The game keeps its state.
func (m Model) handleResize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width

	m.config.ScreenW = width
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m
}

// boardHeight is the window height minus the help footer.
func (m Model) boardHeight() int {
	footer := lipgloss.Height(m.help.View(m.keys))
	return max(m.height-footer, 0)
}

// handleTick processes game ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.sessionID = uuid.NewString()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished game. Failures are logged, play goes on.
func (m Model) saveResult() {
	if m.opts.Store == nil || m.gameState.PuzzleID == "" {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		SessionID: m.sessionID,
		PuzzleID:  m.gameState.PuzzleID,
		Mode:      m.gameState.Mode,
		Won:       m.gameState.Won,
		Mistakes:  m.gameState.MistakesMade,
	})
	if errors.Is(err, storage.ErrAlreadySaved) {
		m.opts.Logger.Debug("Result already saved", "session", m.sessionID)
		return
	}
	if err != nil {
		m.opts.Logger.Warn("Result not saved", "puzzle", m.gameState.PuzzleID, "err", err)
		return
	}
	m.opts.Logger.Debug("Result saved",
		"session", m.sessionID,
		"puzzle", m.gameState.PuzzleID,
		"mode", m.gameState.Mode,
		"won", m.gameState.Won,
		"mistakes", m.gameState.MistakesMade,
	)
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("Screenshot not saved", "err", err)
			return
		}
		dir = filepath.Join(home, ".connections", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("Screenshot not saved", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("Screenshot not saved", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, m.opts.Palette) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsGoingBack returns true if the player asked for the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player wants to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (goBack bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
