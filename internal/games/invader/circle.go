package invader

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/morse-invader/internal/core"
)

// ErrStepOutOfRange is returned by RadiusAt for a step with no radius entry.
var ErrStepOutOfRange = errors.New("invader: step out of range")

// Radii is the target circle radius after each marker step.
var Radii = [...]int{0, 40, 40, 30, 30, 25, 0}

// Trim offsets the circle center from the target marker corner, per step.
var Trim = [...]core.Point{
	{X: 0, Y: 0},
	{X: 10, Y: 5},
	{X: 10, Y: 5},
	{X: 15, Y: 10},
	{X: 13, Y: 11},
	{X: 7, Y: 0},
}

// Idle circle placement, relative to the playfield center.
const (
	idleOffsetX = -15
	idleY       = 65
	idleRadius  = 10
)

// RadiusAt returns the radius and center trim for a step index.
// Trim has one entry fewer than Radii; the last trim is reused.
func RadiusAt(step int) (int, core.Point, error) {
	if step < 0 || step >= len(Radii) {
		return 0, core.Point{}, fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	return Radii[step], Trim[core.Min(step, len(Trim)-1)], nil
}

// Circle is the target shown to the player: a disc with the target
// character inside, sized like the disc.
type Circle struct {
	Center     core.Point
	Radius     int
	Letter     string
	LetterSize int
}

// IdleCircle is the small empty circle shown while no target is moving.
func IdleCircle(playfieldW int) Circle {
	return Circle{
		Center: core.Point{X: playfieldW/2 + idleOffsetX, Y: idleY},
		Radius: idleRadius,
	}
}

// Place moves the circle to the marker position for the given step.
func (c *Circle) Place(marker core.Point, step int, letter string) error {
	radius, trim, err := RadiusAt(step)
	if err != nil {
		return err
	}
	c.Center = marker.Add(trim)
	c.Radius = radius
	c.Letter = letter
	c.LetterSize = radius
	return nil
}

// Idle reports whether the circle carries no letter.
func (c Circle) Idle() bool {
	return c.Letter == ""
}
