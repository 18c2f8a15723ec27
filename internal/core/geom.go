// Package core provides fundamental types and utilities for the kite game.
// It does not depend on Bubble Tea, which keeps game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps continuous field coordinates onto a rectangle of screen cells.
// Field units are the simulation's pixels; the viewport stretches them to fill
// Area regardless of aspect ratio.
type Viewport struct {
	FieldW, FieldH float64
	Area           Rect
}

// NewViewport creates a viewport for a field of the given size drawn into area.
func NewViewport(fieldW, fieldH float64, area Rect) Viewport {
	return Viewport{FieldW: fieldW, FieldH: fieldH, Area: area}
}

// Col converts a field x coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	if v.FieldW <= 0 {
		return v.Area.X
	}
	return v.Area.X + int(math.Floor(x*float64(v.Area.W)/v.FieldW))
}

// Row converts a field y coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	if v.FieldH <= 0 {
		return v.Area.Y
	}
	return v.Area.Y + int(math.Floor(y*float64(v.Area.H)/v.FieldH))
}

// Cells converts a field-space box into the screen cells it covers.
// A box that has any extent always covers at least one cell.
func (v Viewport) Cells(x, y, w, h float64) Rect {
	left, top := v.Col(x), v.Row(y)
	right, bottom := v.Col(x+w), v.Row(y+h)
	if w > 0 && right <= left {
		right = left + 1
	}
	if h > 0 && bottom <= top {
		bottom = top + 1
	}
	return NewRect(left, top, right-left, bottom-top)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
