// Package core provides fundamental types and utilities shared by the site's
// pages and the mini-game. It contains no Bubble Tea code so that game and
// theme logic stay pure and testable.
package core

import "math"

// RectF is an axis-aligned bounding box in canvas units.
// The game simulates in canvas units and only maps to cells when drawing.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new float rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Cell converts the box's top-left corner to cell coordinates given the number
// of canvas units covered by one cell on each axis. Boxes partly above or left
// of the canvas map to negative cells.
func (r RectF) Cell(unitsX, unitsY float64) (int, int) {
	if unitsX <= 0 || unitsY <= 0 {
		return int(math.Floor(r.X)), int(math.Floor(r.Y))
	}
	return int(math.Floor(r.X / unitsX)), int(math.Floor(r.Y / unitsY))
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
