// Package puzzle implements the "group four related items" game rules.
// It is pure logic: no terminal, no storage, no clock. The platform reads the
// State's fields and calls its operations in response to player input.
package puzzle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GroupSize is the number of items in every group.
const GroupSize = 4

// GroupCount is the number of groups on a board.
const GroupCount = 4

// DefaultMistakes is how many wrong submissions a player may make.
const DefaultMistakes = 3

// Difficulty ranks a group from most obvious (1) to trickiest (4).
type Difficulty int

const (
	DifficultyStraightforward Difficulty = 1
	DifficultyMedium          Difficulty = 2
	DifficultyHard            Difficulty = 3
	DifficultyTricky          Difficulty = 4
)

// Valid reports whether d is one of the four tiers.
func (d Difficulty) Valid() bool {
	return d >= DifficultyStraightforward && d <= DifficultyTricky
}

// String returns the tier name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyStraightforward:
		return "straightforward"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyTricky:
		return "tricky"
	default:
		return "unknown"
	}
}

// Group is a themed set of four items.
type Group struct {
	Category   string
	Items      []string
	Difficulty Difficulty
}

// Contains reports whether item belongs to the group.
func (g Group) Contains(item string) bool {
	for _, it := range g.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Label returns the category and items as shown on a solved bar.
func (g Group) Label() string {
	return Upper(g.Category) + ": " + Upper(strings.Join(g.Items, ", "))
}

// Upper returns text the way the board shows it.
func Upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// foldKey returns the key two items share when they would look the same on the board.
func foldKey(item string) string {
	return cases.Fold().String(strings.TrimSpace(item))
}

// Puzzle is one board: four groups under an identifier.
type Puzzle struct {
	ID     string
	Title  string
	Groups []Group
}

// Items returns every item of the puzzle in declaration order.
func (p Puzzle) Items() []string {
	return flatten(p.Groups)
}

// flatten concatenates the items of groups in order.
func flatten(groups []Group) []string {
	items := make([]string, 0, len(groups)*GroupSize)
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}
