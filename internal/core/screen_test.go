package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetKeepsColor(t *testing.T) {
	s := NewScreen(5, 1)
	s.SetColored(2, 0, 'A', ColorTileActive)
	s.Set(2, 0, 'B')

	cell := s.GetCell(2, 0)
	if cell.Rune != 'B' || cell.Color != ColorTileActive {
		t.Errorf("GetCell = %+v, want B with ColorTileActive", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(0, 0, 4, 4), 'X', ColorGroup2)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, (%d, %d) = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "●●●ab")

	if got := s.Row(0); got != "●●●ab     " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "Hello")

	if got := s.Row(0); got != "   He" {
		t.Errorf("Row(0) = %q, want %q", got, "   He")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorAccent)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorAccent {
		t.Error("centered text should carry its colour")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 3, 2), '#', ColorGroup1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != '#' || cell.Color != ColorGroup1) {
				t.Errorf("(%d, %d) = %+v, want filled", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("(%d, %d) = %q, want space", x, y, cell.Rune)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorCursor)

	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, want %q", y, got, line)
		}
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1), ColorCursor)
	if s.Get(0, 0) != ' ' {
		t.Error("1x1 box should not draw")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(0, 0, "hello", ColorMuted)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "hel" {
		t.Errorf("Row(0) = %q, want hel", got)
	}
	if s.GetCell(0, 0).Color != ColorMuted {
		t.Error("Resize should keep colours")
	}
	if got := s.Row(2); strings.TrimSpace(got) != "" {
		t.Errorf("new row should be blank, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, want blanks", got)
	}
}

func TestGroupColor(t *testing.T) {
	tests := []struct {
		d    int
		want Color
	}{
		{1, ColorGroup1},
		{2, ColorGroup2},
		{3, ColorGroup3},
		{4, ColorGroup4},
		{0, ColorTile},
		{5, ColorTile},
	}
	for _, tt := range tests {
		if got := GroupColor(tt.d); got != tt.want {
			t.Errorf("GroupColor(%d) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"●●●", 3},
		{"APPLE", 5},
		{"東京", 4},
		{"a東b", 4},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestScreenDrawTextWide(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(1, 0, "東京!", ColorAccent)

	if got := s.Row(0); got != " 東京!  " {
		t.Errorf("Row(0) = %q", got)
	}
	if w := TextWidth(s.Row(0)); w != 8 {
		t.Errorf("row width = %d, want 8", w)
	}
	if cell := s.GetCell(2, 0); cell.Rune != Continuation || cell.Color != ColorAccent {
		t.Errorf("cell right of a wide rune = %+v, want a coloured continuation", cell)
	}
}

func TestScreenWideRuneOverwritten(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "東京")

	// Writing over either half clears the whole wide rune
	s.Set(1, 0, 'a')
	s.Set(2, 0, 'b')

	if got := s.Row(0); got != " ab   " {
		t.Errorf("Row(0) = %q, want %q", got, " ab   ")
	}
}

func TestScreenWideRuneAtEdge(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(2, 0, "東")

	if got := s.Row(0); got != "   " {
		t.Errorf("Row(0) = %q, a cut wide rune should become a space", got)
	}
}
