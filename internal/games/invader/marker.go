package invader

import "github.com/vovakirdan/morse-invader/internal/core"

// MoveSteps holds the per-step (dx, dy) offsets in playfield pixels.
// The offsets shrink as the code goes on, so the marker sweeps wide first
// and then settles while it falls.
var MoveSteps = [...]core.Point{
	{X: 190, Y: 93},
	{X: 96, Y: 103},
	{X: 45, Y: 115},
	{X: 25, Y: 98},
	{X: 10, Y: 90},
	{X: 0, Y: 0},
}

// Marker is a square that steps left on a dot and right on a dash.
type Marker struct {
	x, y           int
	startX, startY int
	size           int
	direction      int // 1 = right, -1 = left
	moveCount      int
}

// NewMarker creates a marker whose top-left corner starts at (x, y).
func NewMarker(x, y, size int) *Marker {
	return &Marker{
		x:         x,
		y:         y,
		startX:    x,
		startY:    y,
		size:      size,
		direction: 1,
	}
}

// Move applies the next step offset. Left subtracts dx, right adds it, and
// either one drops the marker by dy. The step index advances even when
// neither key is set.
func (m *Marker) Move(left, right bool, w, h int) {
	d := MoveSteps[m.moveCount%len(MoveSteps)]

	if left {
		m.x -= d.X
	}
	if right {
		m.x += d.X
	}

	if m.x <= 0 || m.x >= w-m.size {
		m.direction = -m.direction
	}

	if left || right {
		m.y += d.Y
	}
	m.y = core.Min(m.y, h-m.size)

	m.moveCount++
}

// Reset returns the marker to its start position and rewinds the step index.
func (m *Marker) Reset() {
	m.x = m.startX
	m.y = m.startY
	m.moveCount = 0
}

// Pos returns the top-left corner.
func (m *Marker) Pos() core.Point {
	return core.Point{X: m.x, Y: m.y}
}

// Size returns the side length in pixels.
func (m *Marker) Size() int {
	return m.size
}

// MoveCount returns how many steps were taken since the last reset.
func (m *Marker) MoveCount() int {
	return m.moveCount
}

// Direction returns 1 or -1. It flips each time a step ends at a wall.
func (m *Marker) Direction() int {
	return m.direction
}
