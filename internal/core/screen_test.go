package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '█', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '█' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red block", cell)
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearSetsBackground(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X', ColorWhite)
	s.Clear(ColorDarkGray)

	if s.Background() != ColorDarkGray {
		t.Errorf("Background() = %v, expected dark gray", s.Background())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDarkGray {
				t.Fatalf("after Clear expected blank dark gray cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 0", ColorWhite)

	if !strings.HasPrefix(s.Row(1)[2:], "Score: 0") {
		t.Errorf("row 1 = %q", s.Row(1))
	}

	s.DrawText(18, 0, "Level", ColorWhite)
	if s.Get(18, 0) != 'L' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorWhite)
	s.DrawText(0, 1, "def", ColorWhite)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}
