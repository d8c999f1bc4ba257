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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestSetGetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '@', ColorBrightYellow)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell color = %v, expected ColorBrightYellow", cell.Color)
	}

	// Out-of-bounds writes are ignored, reads return a default space
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(10, 0, 'x', ColorRed)
	oob := s.GetCell(99, 99)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected default space", oob)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipped at the right edge
	s.DrawText(18, 2, "abc")
	if s.Get(18, 2) != 'a' || s.Get(19, 2) != 'b' {
		t.Error("DrawText should clip at screen edge without wrapping")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("DrawTextCentered misplaced: row = %q", s.Row(1))
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(2, 2, '#', ColorGreen)

	s.Resize(20, 10)

	cell := s.GetCell(2, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("Resize lost content: %+v", cell)
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
