// Package core provides fundamental types and utilities for copybird.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world space used for collision detection.
// Bounds are derived on demand from Pos and Size.
type Rect struct {
	Pos  Vector2 // Top-left corner
	Size Vector2 // Width and height, never negative
}

// NewRect creates a rectangle; negative dimensions are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Pos:  Vector2{X: x, Y: y},
		Size: Vector2{X: math.Max(w, 0), Y: math.Max(h, 0)},
	}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 { return r.Pos.X }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Pos.Y }

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.Pos.X + r.Size.X }

// MaxY returns the y-coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Pos.Y + r.Size.Y }

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.MaxX() <= other.MinX() || r.MinX() >= other.MaxX() {
		return false
	}
	if r.MinY() >= other.MaxY() || r.MaxY() <= other.MinY() {
		return false
	}
	return true
}

// ContainsRect returns true if other lies entirely inside r (edges inclusive).
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX() >= r.MinX() && other.MaxX() <= r.MaxX() &&
		other.MinY() >= r.MinY() && other.MaxY() <= r.MaxY()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
