// Package core provides fundamental types and utilities shared by the
// simulation and its collaborators. It has no external dependencies (no Bubble
// Tea, no storage) so the game logic stays pure and testable.
package core

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Dist returns the distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Sqrt(v.Sub(o).LenSq())
}

// CirclesOverlap reports whether two circles strictly overlap.
// Touching edges do not count as contact.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() < r*r
}

// SweptCirclesOverlap reports whether two circles moving in straight lines
// from a0 to a1 and b0 to b1 over the same interval strictly overlap at any
// moment of it. A fast circle can pass through another between the two end
// positions; this catches that.
func SweptCirclesOverlap(a0, a1 Vec, ra float64, b0, b1 Vec, rb float64) bool {
	// Relative position of b seen from a, at the start and end.
	d0 := b0.Sub(a0)
	d1 := b1.Sub(a1)
	move := d1.Sub(d0)

	t := 0.0
	if l := move.LenSq(); l > 0 {
		t = ClampF(-d0.Dot(move)/l, 0, 1)
	}
	r := ra + rb
	return d0.Add(move.Scale(t)).LenSq() < r*r
}

// Rect represents an axis-aligned box in screen cells.
// Used for hit regions and overlay layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
