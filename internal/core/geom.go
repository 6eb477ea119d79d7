// Package core provides fundamental types shared by the games and the runner.
// It has no external dependencies so game logic stays pure and testable.
package core

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the taxicab distance between two points.
func (p Point) Manhattan(o Point) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Rect represents an axis-aligned box of cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	return r.W * r.H
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
