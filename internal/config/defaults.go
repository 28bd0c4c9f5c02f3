package config

import (
	_ "embed"
	"maps"

	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

//go:embed defaults/connections.yaml
var defaultConnectionsYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() ConnectionsConfig {
	return ConnectionsConfig{
		Game: GameConfig{
			Mistakes:  puzzle.DefaultMistakes,
			DailySalt: "connections",
		},
		Theme: ThemeConfig{
			Difficulty: maps.Clone(defaultDifficultyColors),
			Tile:       "#efefe6",
			Active:     "#5a594e",
		},
	}
}
