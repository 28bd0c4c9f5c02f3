package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character position with its colour.
type Cell struct {
	Rune  rune
	Color Color
}

// Continuation fills the cell right of a wide rune. It is never printed.
const Continuation rune = 0

// Screen is a 2D character buffer for rendering the board.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
		// Drop a wide rune whose right half was cut off
		if copyW > 0 && runewidth.RuneWidth(s.cells[y][copyW-1].Rune) == 2 {
			s.cells[y][copyW-1].Rune = ' '
		}
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position, keeping the cell's colour.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.place(x, y, r, s.cells[y][x].Color)
}

// SetColored places a rune with a colour at the given position.
// A wide rune also takes the cell to its right.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.place(x, y, r, c)
}

// place writes r at (x, y) and returns how many cells it advances.
// A wide rune that would be cut by the right edge becomes a space.
func (s *Screen) place(x, y int, r rune, c Color) int {
	w := runewidth.RuneWidth(r)
	if w == 0 || !s.inBounds(x, y) {
		return w
	}
	if w == 2 && !s.inBounds(x+1, y) {
		r, w = ' ', 1
	}

	s.release(x, y)
	if w == 2 {
		s.release(x+1, y)
		s.cells[y][x+1] = Cell{Rune: Continuation, Color: c}
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
	return w
}

// release blanks the other half of a wide rune that (x, y) belongs to.
func (s *Screen) release(x, y int) {
	row := s.cells[y]
	switch {
	case row[x].Rune == Continuation && x > 0:
		row[x-1].Rune = ' '
	case runewidth.RuneWidth(row[x].Rune) == 2 && x+1 < s.width && row[x+1].Rune == Continuation:
		row[x+1].Rune = ' '
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		c := s.GetCell(x, y).Color
		x += s.place(x, y, r, c)
	}
}

// DrawTextColored writes a coloured string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		x += s.place(x, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// FillRect fills a rectangular area with the given rune and colour.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// String converts the screen buffer to plain text without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if r := s.cells[y][x].Rune; r != Continuation {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune != Continuation {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// TextWidth returns the number of screen cells text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateText shortens text to at most width cells, ending in "…" when cut.
func TruncateText(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}
