package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connections/internal/content"
	_ "github.com/vovakirdan/tui-connections/internal/games/connections"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

func newTestMenu(t *testing.T) MenuModel {
	t.Helper()
	pack, err := content.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	return NewMenuModel(pack, 100, 30)
}

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuItems(t *testing.T) {
	m := newTestMenu(t)

	if len(m.items) < 4 {
		t.Fatalf("menu has %d items", len(m.items))
	}
	if m.items[0].ModeID != "connections" || m.items[1].ModeID != "connections_daily" {
		t.Errorf("first items = %q, %q; want the registered modes", m.items[0].ModeID, m.items[1].ModeID)
	}
	if m.items[2].PuzzleID != "day-1" {
		t.Errorf("items[2].PuzzleID = %q, want the first board", m.items[2].PuzzleID)
	}
	if !m.items[len(m.items)-1].Stats {
		t.Error("last item should open stats")
	}

	view := m.View()
	for _, want := range []string{"C O N N E C T I O N S", "Connections (Daily)", "Stats"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuSelectDaily(t *testing.T) {
	m := pressMenu(t, newTestMenu(t),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	res := m.Result()
	if res.Quit || res.WantsStats {
		t.Fatalf("Result() = %+v, want a game", res)
	}
	if res.ModeID != "connections_daily" || res.PuzzleID != "" {
		t.Errorf("Result() = %+v, want daily mode", res)
	}
}

func TestMenuSelectBoard(t *testing.T) {
	m := pressMenu(t, newTestMenu(t),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	res := m.Result()
	if res.ModeID != "connections" || res.PuzzleID != "day-1" {
		t.Errorf("Result() = %+v, want connections/day-1", res)
	}
}

func TestMenuStatsAndQuit(t *testing.T) {
	m := pressMenu(t, newTestMenu(t), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsStats {
		t.Error("tab should open stats")
	}

	m = pressMenu(t, newTestMenu(t), runeKey('q'))
	if !m.Result().Quit || !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := pressMenu(t, newTestMenu(t), tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, should stay at the top", m.cursor)
	}

	for range len(m.items) + 3 {
		m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, should stop at the last item", m.cursor)
	}
}

func TestStatsModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{PuzzleID: "day-1", Mode: "connections", Won: true, Mistakes: 1},
		{PuzzleID: "day-2", Mode: "connections_daily", Won: false, Mistakes: 3},
		{PuzzleID: "day-3", Mode: "connections", Won: true},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewStatsModel(store, 100, 30)
	if m.loadErr != nil {
		t.Fatalf("load failed: %v", m.loadErr)
	}
	if len(m.results) != 3 || m.summary.Played != 3 || m.summary.Won != 2 {
		t.Errorf("all modes: %d results, summary %+v", len(m.results), m.summary)
	}
	if !strings.Contains(m.View(), "Played 3") {
		t.Error("View() should show the totals")
	}

	// Tab moves to the first registered mode
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(StatsModel)
	if m.tabs[m.tabCursor].mode != "connections" {
		t.Fatalf("tab mode = %q", m.tabs[m.tabCursor].mode)
	}
	if len(m.results) != 2 || m.summary.Played != 2 {
		t.Errorf("connections: %d results, summary %+v", len(m.results), m.summary)
	}

	// Shift+tab wraps back around
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(StatsModel)
	if m.tabs[m.tabCursor].mode != "connections_daily" {
		t.Errorf("tab mode = %q after wrapping", m.tabs[m.tabCursor].mode)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(StatsModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestStatsModelTabIgnoresOtherModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for range 3 {
		if _, err := store.SaveResult(storage.Result{PuzzleID: "day-1", Mode: "connections_daily", Won: true}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	// Newer games of another mode fill the whole recent window
	for range maxResults + 5 {
		if _, err := store.SaveResult(storage.Result{PuzzleID: "day-2", Mode: "connections"}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewStatsModel(store, 100, 30)
	for m.tabs[m.tabCursor].mode != "connections_daily" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(StatsModel)
	}

	if m.summary.Played != 3 {
		t.Errorf("summary.Played = %d, want 3", m.summary.Played)
	}
	if len(m.results) != 3 {
		t.Errorf("daily tab lists %d results, want 3", len(m.results))
	}
	if rows := len(m.table.Rows()); rows != 3 {
		t.Errorf("table has %d rows, want 3", rows)
	}
}

func TestStatsModelWithoutStore(t *testing.T) {
	m := NewStatsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No finished games yet.") {
		t.Error("View() should explain that there is no history")
	}
}
