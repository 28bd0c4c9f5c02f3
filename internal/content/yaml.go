// Package content loads puzzle packs: YAML files holding one or more boards.
// This package depends on puzzle but puzzle does not depend on content.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

// YAMLPack represents the YAML structure of a pack file.
type YAMLPack struct {
	Puzzles []YAMLPuzzle `yaml:"puzzles"`
}

// YAMLPuzzle represents a single board in YAML format.
type YAMLPuzzle struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title,omitempty"`
	Groups []YAMLGroup `yaml:"groups"`
}

// YAMLGroup represents a group in YAML format.
type YAMLGroup struct {
	Category   string   `yaml:"category"`
	Difficulty int      `yaml:"difficulty"`
	Items      []string `yaml:"items"`
}

// ParseYAML parses a pack and validates every board in it.
// Puzzle IDs must be unique within the pack.
func ParseYAML(data []byte) ([]puzzle.Puzzle, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Puzzles) == 0 {
		return nil, fmt.Errorf("pack contains no puzzles")
	}

	puzzles := make([]puzzle.Puzzle, 0, len(yp.Puzzles))
	seen := make(map[string]bool, len(yp.Puzzles))
	for _, y := range yp.Puzzles {
		p := y.toPuzzle()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate puzzle id %q", p.ID)
		}
		seen[p.ID] = true
		puzzles = append(puzzles, p)
	}

	return puzzles, nil
}

// MarshalYAML encodes puzzles in pack format.
func MarshalYAML(puzzles []puzzle.Puzzle) ([]byte, error) {
	yp := YAMLPack{Puzzles: make([]YAMLPuzzle, 0, len(puzzles))}
	for _, p := range puzzles {
		y := YAMLPuzzle{ID: p.ID, Title: p.Title}
		for _, g := range p.Groups {
			y.Groups = append(y.Groups, YAMLGroup{
				Category:   g.Category,
				Difficulty: int(g.Difficulty),
				Items:      g.Items,
			})
		}
		yp.Puzzles = append(yp.Puzzles, y)
	}
	return yaml.Marshal(yp)
}

// toPuzzle converts the YAML form to the domain type.
func (y YAMLPuzzle) toPuzzle() puzzle.Puzzle {
	title := y.Title
	if title == "" {
		title = y.ID
	}

	p := puzzle.Puzzle{
		ID:     y.ID,
		Title:  title,
		Groups: make([]puzzle.Group, 0, len(y.Groups)),
	}
	for _, g := range y.Groups {
		p.Groups = append(p.Groups, puzzle.Group{
			Category:   g.Category,
			Difficulty: puzzle.Difficulty(g.Difficulty),
			Items:      g.Items,
		})
	}
	return p
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
