// Package core provides fundamental types for the snake game: grid cells,
// screen rectangles, the character screen buffer and input frames.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is an integer 2D coordinate. It names both grid cells and
// unit direction vectors.
type Point struct {
	X, Y int
}

// Unit direction vectors.
var (
	Right = Point{X: 1, Y: 0}
	Left  = Point{X: -1, Y: 0}
	Down  = Point{X: 0, Y: 1}
	Up    = Point{X: 0, Y: -1}
)

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// InBounds reports whether p lies in [0, n) on both axes.
func (p Point) InBounds(n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
