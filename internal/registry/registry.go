// Package registry holds the playable game modes.
// Modes register themselves in init() functions, so the CLI and menus can
// list and start them without importing each mode directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-connections/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles key mapping, timing and terminal output.
type Game interface {
	// ID returns the mode identifier (e.g., "connections_daily").
	// Used for CLI commands and the results history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	// Called once at start and again when the player asks for a new game.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one tick, applying the actions in the frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is cleared by the game.
	Render(dst *core.Screen)

	// State returns the current status for the platform.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a mode. Panics if the ID is already registered or empty.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: mode id is empty")
	}
	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	modes[info.ID] = entry{info: info, factory: f}
}

// List returns all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata for a mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.info, ok
}

// Create instantiates a game for the given mode.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
