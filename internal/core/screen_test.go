package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorYellow)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell color = %v, expected ColorYellow", cell.Color)
	}

	// Out of bounds is silently ignored and reads back blank
	s.SetCell(-1, 0, 'Y', ColorRed)
	s.SetCell(10, 0, 'Y', ColorRed)
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorBlue)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v, expected blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(8, 4)
	s.SetCell(2, 1, 'A', ColorCyan)

	s.Resize(12, 6)
	if s.Width() != 12 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 12x6", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 1); got.Rune != 'A' || got.Color != ColorCyan {
		t.Errorf("content not preserved across resize: %+v", got)
	}

	// Shrinking clips
	s.Resize(3, 2)
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("cell inside shrunk bounds lost: %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "HI", ColorBrightWhite)

	if s.Get(2, 1) != 'H' || s.Get(3, 1) != 'I' {
		t.Errorf("DrawTextColored did not place text, row = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorBrightWhite {
		t.Errorf("DrawTextColored lost color")
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "LONG")
	if s.Get(9, 0) != 'O' {
		t.Errorf("clipped text wrong: row = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()

	m.Set(Player1, ActionLeft)
	m.Set(Player2, ActionUp)

	if !m.Player1Frame().Has(ActionLeft) {
		t.Error("Player1 should have ActionLeft")
	}
	if m.Player1Frame().Has(ActionUp) {
		t.Error("Player1 should not have ActionUp")
	}
	if !m.Player2Frame().Has(ActionUp) {
		t.Error("Player2 should have ActionUp")
	}

	m.Clear()
	if m.Player1Frame().Has(ActionLeft) || m.Player2Frame().Has(ActionUp) {
		t.Error("Clear should drop all player actions")
	}
}
