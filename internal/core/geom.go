// Package core provides fundamental types shared by the game and its front ends.
// It has no external dependencies so that game logic stays pure and testable.
package core

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns a size×size box anchored at (x, y).
func Square(x, y, size int) Rect {
	return NewRect(x, y, size, size)
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes share at least one pixel.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Approach moves from by step toward to along one axis.
// It does not stop at the target, so it can overshoot by up to step-1.
func Approach(from, to, step int) int {
	switch {
	case from < to:
		return from + step
	case from > to:
		return from - step
	default:
		return from
	}
}

// Wrap teleports v to the opposite end of [0, max] when it leaves the range.
func Wrap(v, max int) int {
	if v < 0 {
		return max
	}
	if v > max {
		return 0
	}
	return v
}
