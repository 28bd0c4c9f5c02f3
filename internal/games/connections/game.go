// Package connections is the playable "create four groups of four" game.
// It wraps one puzzle.State per session and adds what the terminal needs on
// top of the rules: a cursor over the board and short feedback messages.
package connections

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-connections/internal/content"
	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/puzzle"
	"github.com/vovakirdan/tui-connections/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Mode IDs as registered with the registry.
const (
	ClassicID = "connections"
	DailyID   = "connections_daily"
)

// Columns is how many tiles sit in one board row.
const Columns = puzzle.GroupSize

// messageSeconds is how long feedback stays on screen.
const messageSeconds = 2

// Settings configures new games. Zero values fall back to defaults.
type Settings struct {
	Pack      []puzzle.Puzzle  // Boards to choose from; empty uses the built-in pack
	PuzzleID  string           // Classic mode: always play this board
	Mistakes  int              // Wrong guesses allowed
	DailySalt string           // Mixed into the daily board choice
	Now       func() time.Time // Clock for daily mode
}

// Package-level settings, read by games created through the registry.
var settings Settings

// Configure sets the settings used by games created after this call.
func Configure(s Settings) {
	settings = s
}

// Game implements the puzzle for the terminal platform.
type Game struct {
	mode     Mode
	settings Settings
	rng      *rand.Rand
	tick     uint64
	tickRate int

	puzzle  puzzle.Puzzle
	state   *puzzle.State
	loadErr error

	cursor       int
	message      string
	messageColor core.Color
	messageTicks int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic mode game using the configured settings.
func New() *Game {
	return &Game{mode: ModeClassic, settings: settings}
}

// NewDaily creates a daily mode game using the configured settings.
func NewDaily() *Game {
	return &Game{mode: ModeDaily, settings: settings}
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(mode Mode, s Settings) *Game {
	return &Game{mode: mode, settings: s}
}

func init() {
	registry.Register(registry.ModeInfo{
		ID:          ClassicID,
		Title:       "Connections",
		Description: "Pick a board, or get a random one",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.ModeInfo{
		ID:          DailyID,
		Title:       "Connections (Daily)",
		Description: "Everyone gets the same board today",
	}, func() registry.Game {
		return NewDaily()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return DailyID
	}
	return ClassicID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Connections (Daily)"
	}
	return "Connections"
}

// Reset starts a new session on a freshly chosen board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = 0
	g.clearMessage()

	g.puzzle, g.loadErr = g.choosePuzzle()
	if g.loadErr != nil {
		g.state = nil
	} else {
		g.state = puzzle.NewState(g.puzzle.Groups, g.settings.Mistakes, g.rng)
	}

	g.checkScreenSize()
}

// choosePuzzle picks the board for this session.
func (g *Game) choosePuzzle() (puzzle.Puzzle, error) {
	pack := g.settings.Pack
	if len(pack) == 0 {
		var err error
		if pack, err = content.Default(); err != nil {
			return puzzle.Puzzle{}, err
		}
	}

	if g.mode == ModeDaily {
		now := time.Now
		if g.settings.Now != nil {
			now = g.settings.Now
		}
		return content.ForDate(pack, now(), g.settings.DailySalt)
	}

	if g.settings.PuzzleID != "" {
		return content.Find(pack, g.settings.PuzzleID)
	}
	return pack[g.rng.Intn(len(pack))], nil
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.state == nil || g.tooSmall || g.state.Status() != puzzle.StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionToggle) {
		if item, ok := g.itemAtCursor(); ok {
			g.state.ToggleActive(item)
		}
	}
	if in.Has(core.ActionDeselect) {
		g.state.DeselectAll()
	}
	if in.Has(core.ActionShuffle) {
		g.state.Shuffle()
	}
	if in.Has(core.ActionSubmit) {
		g.submit()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, staying inside the board.
func (g *Game) moveCursor(in core.InputFrame) {
	n := len(g.state.Items())
	if n == 0 {
		g.cursor = 0
		return
	}

	col := g.cursor % Columns
	switch {
	case in.Has(core.ActionUp):
		if g.cursor-Columns >= 0 {
			g.cursor -= Columns
		}
	case in.Has(core.ActionDown):
		if g.cursor+Columns < n {
			g.cursor += Columns
		}
	case in.Has(core.ActionLeft):
		if col > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if col < Columns-1 && g.cursor+1 < n {
			g.cursor++
		}
	}
}

// submit sends the selection to the state machine and reports the outcome.
func (g *Game) submit() {
	if !g.state.CanSubmit() {
		g.showMessage(fmt.Sprintf("Select %d items to submit", puzzle.GroupSize), core.ColorMuted)
		return
	}

	switch g.state.Submit() {
	case puzzle.OutcomeSolved:
		complete := g.state.Complete()
		last := complete[len(complete)-1]
		if g.state.Status() == puzzle.StatusWon {
			g.showMessage("All four groups found!", core.ColorAccent)
		} else {
			g.showMessage("Solved: "+last.Category, core.GroupColor(int(last.Difficulty)))
		}
	case puzzle.OutcomeMistake:
		left := g.state.MistakesRemaining()
		g.showMessage(fmt.Sprintf("Not quite. %d %s left", left, plural(left, "mistake")), core.ColorError)
	case puzzle.OutcomeRevealed:
		g.showMessage("Out of mistakes", core.ColorError)
	}

	// The board shrinks after a solve or a reveal
	n := len(g.state.Items())
	if n == 0 {
		g.cursor = 0
	} else {
		g.cursor = core.Clamp(g.cursor, 0, n-1)
	}
}

// itemAtCursor returns the board item under the cursor.
func (g *Game) itemAtCursor() (string, bool) {
	items := g.state.Items()
	if g.cursor < 0 || g.cursor >= len(items) {
		return "", false
	}
	return items[g.cursor], true
}

func (g *Game) showMessage(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageTicks = g.tickRate * messageSeconds
}

func (g *Game) clearMessage() {
	g.message = ""
	g.messageColor = core.ColorDefault
	g.messageTicks = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		PuzzleID: g.puzzle.ID,
		Mode:     g.ID(),
	}
	if g.state == nil {
		return st
	}

	status := g.state.Status()
	st.Solved = g.state.Solved()
	st.MistakesRemaining = g.state.MistakesRemaining()
	st.MistakesMade = g.state.MistakesMade()
	st.GameOver = status != puzzle.StatusPlaying
	st.Won = status == puzzle.StatusWon
	return st
}

// Puzzle returns the board being played.
func (g *Game) Puzzle() puzzle.Puzzle {
	return g.puzzle
}

// Err returns why no board could be loaded, if any.
func (g *Game) Err() error {
	return g.loadErr
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
