package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 80) {
			t.Fatalf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads give a blank
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenColorCells(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(1, 1, "Miss", ColorRed)

	c := s.GetCell(1, 1)
	if c.Rune != 'M' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red 'M'", c)
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("untouched cell should keep the default color")
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("text not centered, row = %q", s.Row(2))
	}
}

func TestScreenDrawTextRight(t *testing.T) {
	s := NewScreen(20, 2)
	s.DrawTextRight(0, 1, "abc", ColorGreen)

	if got := s.Row(0); got != strings.Repeat(" ", 16)+"abc " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Errorf("text should be clipped at right boundary, row = %q", s.Row(0))
	}
}

func TestScreenDrawDisc(t *testing.T) {
	s := NewScreen(21, 11)
	s.DrawDisc(10, 5, 6, 3, 'o', ColorBrown)

	// Center and the four extremes are inside
	for _, p := range []Point{{10, 5}, {4, 5}, {16, 5}, {10, 2}, {10, 8}} {
		if c := s.GetCell(p.X, p.Y); c.Rune != 'o' || c.Color != ColorBrown {
			t.Errorf("expected disc cell at %+v, got %+v", p, c)
		}
	}
	// Corners of the bounding box are outside
	for _, p := range []Point{{4, 2}, {16, 8}, {3, 5}, {10, 9}} {
		if s.Get(p.X, p.Y) != ' ' {
			t.Errorf("expected blank at %+v, got %q", p, s.Get(p.X, p.Y))
		}
	}
}

func TestScreenDrawDiscZeroRadius(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawDisc(2, 2, 0, 0, '*', ColorDefault)
	if s.Get(2, 2) != '*' {
		t.Error("zero radius disc should draw a single cell")
	}
	if strings.Count(s.String(), "*") != 1 {
		t.Error("zero radius disc should draw exactly one cell")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[Point]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner %+v = %q, expected %q", p, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenLinesAndRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawHLine(0, 0, 10, '-')
	s.DrawVLine(0, 1, 5, '|')
	s.DrawRect(NewRect(2, 2, 2, 2), '#')

	expected := strings.Join([]string{
		"----------",
		"|         ",
		"| ##      ",
		"| ##      ",
		"|         ",
		"|         ",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorCyan {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be blank")
	}
}

func TestInputFrameKeepsSequenceOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDash)
	f.Set(ActionDot)
	f.Set(ActionSubmit)
	f.Set(ActionPause)
	f.Set(ActionDash)
	f.Set(ActionNewTarget)

	if !f.Has(ActionSubmit) || !f.Has(ActionDot) || !f.Has(ActionPause) {
		t.Error("Has should report set actions")
	}
	want := []Action{ActionDash, ActionDot, ActionSubmit, ActionDash, ActionNewTarget}
	if len(f.Sequence) != len(want) {
		t.Fatalf("Sequence = %v, expected %v", f.Sequence, want)
	}
	for i := range want {
		if f.Sequence[i] != want[i] {
			t.Errorf("Sequence[%d] = %v, expected %v", i, f.Sequence[i], want[i])
		}
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionSubmit) || len(f.Sequence) != 0 {
		t.Error("Clear should drop actions and the sequence")
	}
	if !c.Has(ActionSubmit) || len(c.Sequence) != 5 {
		t.Error("Clone should be independent of the source frame")
	}
}
