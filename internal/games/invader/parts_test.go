package invader

import (
	"errors"
	"testing"

	"github.com/vovakirdan/morse-invader/internal/core"
)

func TestMarkerMove(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantX       int
		wantY       int
	}{
		{"dot steps left and down", true, false, 185, 148},
		{"dash steps right and down", false, true, 565, 148},
		{"no key keeps position", false, false, 375, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMarker(MarkerX, MarkerY, MarkerSize)
			m.Move(tt.left, tt.right, PlayfieldW, PlayfieldH)
			if p := m.Pos(); p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("Pos() = (%d, %d), expected (%d, %d)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if m.MoveCount() != 1 {
				t.Errorf("MoveCount() = %d, expected 1", m.MoveCount())
			}
		})
	}
}

func TestMarkerFollowsStepTable(t *testing.T) {
	m := NewMarker(MarkerX, MarkerY, MarkerSize)
	m.Move(false, true, PlayfieldW, PlayfieldH) // +190
	m.Move(true, false, PlayfieldW, PlayfieldH) // -96
	m.Move(false, true, PlayfieldW, PlayfieldH) // +45

	if p := m.Pos(); p.X != 375+190-96+45 {
		t.Errorf("X = %d, expected %d", p.X, 375+190-96+45)
	}
	if m.MoveCount() != 3 {
		t.Errorf("MoveCount() = %d, expected 3", m.MoveCount())
	}

	// Index wraps after the last table entry
	for i := 0; i < 3; i++ {
		m.Move(false, false, PlayfieldW, PlayfieldH)
	}
	before := m.Pos()
	m.Move(true, false, PlayfieldW, 10000)
	if got := m.Pos(); got.X != before.X-190 || got.Y != before.Y+93 {
		t.Errorf("step 7 moved to %+v from %+v, expected the first offset again", got, before)
	}
}

func TestMarkerWallFlipsDirection(t *testing.T) {
	m := NewMarker(100, MarkerY, MarkerSize)
	m.Move(true, false, PlayfieldW, PlayfieldH)
	if m.Pos().X != -90 {
		t.Errorf("X = %d, expected -90", m.Pos().X)
	}
	if m.Direction() != -1 {
		t.Errorf("Direction() = %d, expected -1 after hitting the left wall", m.Direction())
	}
}

func TestMarkerYClamped(t *testing.T) {
	m := NewMarker(MarkerX, 560, MarkerSize)
	m.Move(true, false, PlayfieldW, PlayfieldH)
	if m.Pos().Y != PlayfieldH-MarkerSize {
		t.Errorf("Y = %d, expected %d", m.Pos().Y, PlayfieldH-MarkerSize)
	}
}

func TestMarkerReset(t *testing.T) {
	m := NewMarker(MarkerX, MarkerY, MarkerSize)
	m.Move(true, false, PlayfieldW, PlayfieldH)
	m.Move(false, true, PlayfieldW, PlayfieldH)
	m.Reset()
	if m.Pos() != (core.Point{X: MarkerX, Y: MarkerY}) || m.MoveCount() != 0 {
		t.Errorf("after Reset: pos %+v count %d", m.Pos(), m.MoveCount())
	}
}

func TestRadiusAt(t *testing.T) {
	tests := []struct {
		step   int
		radius int
		trim   core.Point
	}{
		{0, 0, core.Point{X: 0, Y: 0}},
		{1, 40, core.Point{X: 10, Y: 5}},
		{3, 30, core.Point{X: 15, Y: 10}},
		{5, 25, core.Point{X: 7, Y: 0}},
		{6, 0, core.Point{X: 7, Y: 0}}, // last trim reused
	}
	for _, tt := range tests {
		r, trim, err := RadiusAt(tt.step)
		if err != nil {
			t.Fatalf("RadiusAt(%d) error: %v", tt.step, err)
		}
		if r != tt.radius || trim != tt.trim {
			t.Errorf("RadiusAt(%d) = (%d, %+v), expected (%d, %+v)", tt.step, r, trim, tt.radius, tt.trim)
		}
	}

	for _, step := range []int{-1, 7, 100} {
		if _, _, err := RadiusAt(step); !errors.Is(err, ErrStepOutOfRange) {
			t.Errorf("RadiusAt(%d) error = %v, expected ErrStepOutOfRange", step, err)
		}
	}
}

func TestCirclePlace(t *testing.T) {
	c := IdleCircle(PlayfieldW)
	if c.Center != (core.Point{X: 385, Y: 65}) || c.Radius != 10 || !c.Idle() {
		t.Fatalf("IdleCircle = %+v", c)
	}

	if err := c.Place(core.Point{X: 375, Y: 55}, 1, "K"); err != nil {
		t.Fatal(err)
	}
	want := Circle{Center: core.Point{X: 385, Y: 60}, Radius: 40, Letter: "K", LetterSize: 40}
	if c != want {
		t.Errorf("Place = %+v, expected %+v", c, want)
	}

	if err := c.Place(core.Point{}, 9, "K"); !errors.Is(err, ErrStepOutOfRange) {
		t.Errorf("Place out of range error = %v", err)
	}
	if c != want {
		t.Error("failed Place should leave the circle unchanged")
	}
}

func TestPause(t *testing.T) {
	var p Pause
	if !p.Update() {
		t.Error("unarmed pause should not hold")
	}

	p.Set(2)
	results := []bool{p.Update(), p.Update(), p.Update()}
	expected := []bool{false, false, true}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("Update #%d = %v, expected %v", i, results[i], expected[i])
		}
	}

	p.Set(-3)
	if p.Remaining() != 0 {
		t.Error("negative Set should clamp to zero")
	}
}

func TestScoreKeeper(t *testing.T) {
	var s ScoreKeeper
	s.Hit()
	s.Hit()
	s.Miss()
	if s.String() != "Match: 2  Miss: 1" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Rounds() != 3 {
		t.Errorf("Rounds() = %d, expected 3", s.Rounds())
	}
	s.Reset()
	if s.Rounds() != 0 {
		t.Error("Reset should zero the tallies")
	}
}
