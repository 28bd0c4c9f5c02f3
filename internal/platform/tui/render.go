package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connections/internal/config"
	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the board styles from a theme.
func NewPalette(theme config.ThemeConfig) Palette {
	dark := lipgloss.Color("#1a1a1a")
	light := lipgloss.Color("#ffffff")

	p := Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		core.ColorTile: lipgloss.NewStyle().
			Foreground(dark).
			Background(lipgloss.Color(theme.Tile)).
			Bold(true),
		core.ColorTileActive: lipgloss.NewStyle().
			Foreground(light).
			Background(lipgloss.Color(theme.Active)).
			Bold(true),
	}

	for d := puzzle.DifficultyStraightforward; d <= puzzle.DifficultyTricky; d++ {
		p[core.GroupColor(int(d))] = lipgloss.NewStyle().
			Foreground(dark).
			Background(lipgloss.Color(theme.DifficultyColor(d))).
			Bold(true)
	}

	return p
}

// DefaultPalette returns the styles for the built-in theme.
func DefaultPalette() Palette {
	return NewPalette(config.DefaultConfig().Theme)
}

// Style returns the style for c, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != core.Continuation {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
