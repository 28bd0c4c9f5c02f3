package connections

import "github.com/vovakirdan/tui-connections/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNoPuzzle    GameStateType = "no_puzzle"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick              uint64
	Mode              string // "classic" or "daily"
	PuzzleID          string
	Items             []string // Board in display order
	Active            []string // Selection in click order
	Solved            []string // Found categories in solve order
	Cursor            int
	MistakesRemaining int
	State             GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		PuzzleID: g.puzzle.ID,
		Cursor:   g.cursor,
		State:    StateNoPuzzle,
	}
	if g.state == nil {
		return snap
	}

	snap.Items = g.state.Items()
	snap.Active = g.state.ActiveItems()
	snap.MistakesRemaining = g.state.MistakesRemaining()
	for _, group := range g.state.Complete() {
		snap.Solved = append(snap.Solved, group.Category)
	}

	switch {
	case g.state.Status() == puzzle.StatusWon:
		snap.State = StateWon
	case g.state.Status() == puzzle.StatusLost:
		snap.State = StateLost
	case g.tooSmall:
		snap.State = StatePausedSmall
	default:
		snap.State = StatePlaying
	}
	return snap
}
