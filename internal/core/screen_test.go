package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if strings.TrimSpace(s.Row(y)) != "" {
			t.Fatalf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(2, 1, '@', ColorCyan)

	cell := s.GetCell(2, 1)
	if cell.Rune != '@' || cell.Color != ColorCyan {
		t.Errorf("GetCell = %+v, expected '@' cyan", cell)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'X')
	s.Set(0, 99, 'X')
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "hello", ColorDefault)

	if got := s.Row(0); got != "   he" {
		t.Errorf("Row(0) = %q, expected %q", got, "   he")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorDefault)

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
