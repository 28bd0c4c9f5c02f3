package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	state     core.GameState
	resets    int
	steps     int
	lastFrame core.InputFrame
	width     int
	height    int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastFrame = in.Clone()
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(width, height int) {
	g.width, g.height = width, height
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func TestModelStartsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.height >= 24 || g.height <= 0 {
		t.Errorf("board height = %d, should leave room for the help footer", g.height)
	}
	if !strings.Contains(m.View(), "stub board") {
		t.Error("View() should render the game")
	}
}

func TestModelKeyBecomesAction(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})

	m = update(t, m, runeKey('x'))
	m = update(t, m, TickMsg{})
	if !g.lastFrame.Has(core.ActionToggle) {
		t.Error("toggle key should reach the game on the next tick")
	}

	update(t, m, TickMsg{})
	if !g.lastFrame.Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, resize must not restart the game", g.resets)
	}
	if g.width != 100 || g.height >= 40 {
		t.Errorf("game size = %dx%d after resize", g.width, g.height)
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("resets = %d, restart must wait for game over", g.resets)
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want restart after game over", g.resets)
	}
	if m.resultSaved {
		t.Error("restart should allow the next result to be saved")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{Store: store})

	m = update(t, m, TickMsg{})
	g.state = core.GameState{
		PuzzleID:     "day-1",
		Mode:         "connections",
		GameOver:     true,
		Won:          true,
		MistakesMade: 2,
	}
	for range 3 {
		m = update(t, m, TickMsg{})
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("saved %d results, want 1", len(results))
	}
	r := results[0]
	if r.PuzzleID != "day-1" || r.Mode != "connections" || !r.Won || r.Mistakes != 2 {
		t.Errorf("saved result = %+v", r)
	}
	if r.SessionID != m.sessionID {
		t.Errorf("SessionID = %q, want %q", r.SessionID, m.sessionID)
	}

	// The next game gets a fresh session and its own result
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if m.sessionID == r.SessionID {
		t.Error("restart should start a new session")
	}
	m = update(t, m, TickMsg{})

	results, err = store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("saved %d results after a second game, want 2", len(results))
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testRuntime(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(Model)
	if !back.IsGoingBack() || cmd == nil {
		t.Error("esc should leave the game for the menu")
	}
	if back.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	next, cmd = m.Update(runeKey('q'))
	quit := next.(Model)
	if quit.IsGoingBack() || cmd == nil {
		t.Error("q should quit without going back")
	}
}

func TestModelHelpToggleResizesBoard(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	short := g.height

	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if g.height >= short {
		t.Errorf("board height = %d, full help should take more rows than %d", g.height, short)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{}, testRuntime(), Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("found %d screenshots, want 1", len(files))
	}
}
