// Package collide implements the overlap tests used by the engine's pairwise
// collision pass. All comparisons are strict, so shapes that only touch do not
// collide.
package collide

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedPair is returned by Test when no predicate exists for the
// combination of shapes.
var ErrUnsupportedPair = errors.New("unsupported shape pair")

// Shape is the closed set of collision geometries. Only Rect and Circle
// implement it.
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

func (Rect) shape()   {}
func (Circle) shape() {}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// RectRect reports whether two rectangles overlap.
func RectRect(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// CircleCircle reports whether the distance between the centers is less than
// the sum of the radii.
func CircleCircle(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius
}

// RectCircle reports whether the point of r nearest to the circle's center
// lies inside the circle.
func RectCircle(r Rect, c Circle) bool {
	nearestX := clamp(c.X, r.X, r.Right())
	nearestY := clamp(c.Y, r.Y, r.Bottom())
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// Test selects the predicate for the pair. Pairs without a predicate,
// including nil shapes, yield ErrUnsupportedPair.
func Test(a, b Shape) (bool, error) {
	switch a := a.(type) {
	case Rect:
		switch b := b.(type) {
		case Rect:
			return RectRect(a, b), nil
		case Circle:
			return RectCircle(a, b), nil
		}
	case Circle:
		switch b := b.(type) {
		case Rect:
			return RectCircle(b, a), nil
		case Circle:
			return CircleCircle(a, b), nil
		}
	}
	return false, fmt.Errorf("%w: %T and %T", ErrUnsupportedPair, a, b)
}

// Collides is Test with unsupported pairs reported as not colliding.
func Collides(a, b Shape) bool {
	hit, err := Test(a, b)
	if err != nil {
		return false
	}
	return hit
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
