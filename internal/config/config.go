// Package config provides YAML-based configuration loading for the game
// and the colour theme used by the terminal UI.
package config

import "github.com/vovakirdan/tui-connections/internal/puzzle"

// ConnectionsConfig contains all user-tunable settings.
type ConnectionsConfig struct {
	Game  GameConfig  `yaml:"game"`
	Theme ThemeConfig `yaml:"theme"`
}

// GameConfig defines rules and content settings.
type GameConfig struct {
	Mistakes  int    `yaml:"mistakes" env:"CONNECTIONS_MISTAKES"`     // Wrong guesses allowed
	Puzzles   string `yaml:"puzzles" env:"CONNECTIONS_PUZZLES"`       // Pack file or directory
	DailySalt string `yaml:"daily_salt" env:"CONNECTIONS_DAILY_SALT"` // Mixed into the daily board choice
}

// ThemeConfig defines the colours of the board.
// Colours are hex strings understood by lipgloss.
type ThemeConfig struct {
	Difficulty map[int]string `yaml:"difficulty"`
	Tile       string         `yaml:"tile"`
	Active     string         `yaml:"active"`
}

// defaultDifficultyColors is the static difficulty lookup.
var defaultDifficultyColors = map[int]string{
	int(puzzle.DifficultyStraightforward): "#fbd400",
	int(puzzle.DifficultyMedium):          "#b5e352",
	int(puzzle.DifficultyHard):            "#729eeb",
	int(puzzle.DifficultyTricky):          "#bc70c4",
}

// DifficultyColor returns the colour for a solved group of difficulty d.
// Unknown tiers fall back to the tile colour.
func (t ThemeConfig) DifficultyColor(d puzzle.Difficulty) string {
	if c, ok := t.Difficulty[int(d)]; ok && c != "" {
		return c
	}
	if c, ok := defaultDifficultyColors[int(d)]; ok {
		return c
	}
	return t.Tile
}

// Normalize fills zero values with defaults so partial files still work.
func (c *ConnectionsConfig) Normalize() {
	def := DefaultConfig()

	if c.Game.Mistakes <= 0 {
		c.Game.Mistakes = def.Game.Mistakes
	}
	if c.Game.DailySalt == "" {
		c.Game.DailySalt = def.Game.DailySalt
	}
	if c.Theme.Tile == "" {
		c.Theme.Tile = def.Theme.Tile
	}
	if c.Theme.Active == "" {
		c.Theme.Active = def.Theme.Active
	}
	if c.Theme.Difficulty == nil {
		c.Theme.Difficulty = make(map[int]string, len(defaultDifficultyColors))
	}
	for d, col := range defaultDifficultyColors {
		if c.Theme.Difficulty[d] == "" {
			c.Theme.Difficulty[d] = col
		}
	}
}
