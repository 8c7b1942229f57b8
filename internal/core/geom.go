// Package core provides platform primitives shared by games and front ends:
// a coloured cell screen, semantic input frames and small integer geometry.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a screen cell coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen region, used for HUD boxes and viewports.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
