package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{14, 14, true},  // Bottom-right inside
		{15, 15, false}, // Just outside
		{9, 10, false},  // Left of rect
		{12, 9, false},  // Above rect
		{12, 12, true},  // Center
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(4, 6, 10, 8)
	if r.Right() != 14 {
		t.Errorf("Right() = %d, expected 14", r.Right())
	}
	if r.Bottom() != 14 {
		t.Errorf("Bottom() = %d, expected 14", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 9 || cy != 10 {
		t.Errorf("Center() = (%d, %d), expected (9, 10)", cx, cy)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 375, Y: 55}.Add(Point{X: 10, Y: 5})
	if p != (Point{X: 385, Y: 60}) {
		t.Errorf("Add = %+v, expected {385 60}", p)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, from, to int
		expected    int
	}{
		{0, 800, 80, 0},
		{400, 800, 80, 40},
		{800, 800, 80, 80},
		{300, 600, 24, 12},
		{5, 0, 80, 0},
	}

	for _, tt := range tests {
		if got := Scale(tt.v, tt.from, tt.to); got != tt.expected {
			t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tt.v, tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max int
		expected      int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max returned wrong values")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs returned wrong values")
	}
}
