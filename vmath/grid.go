package vmath

import "math"

// Point is a grid cell addressed as (row, column)
type Point struct {
	Y, X int
}

// Add returns the point offset by (dy, dx)
func (p Point) Add(dy, dx int) Point {
	return Point{Y: p.Y + dy, X: p.X + dx}
}

// Locatable is anything occupying a single grid cell
type Locatable interface {
	Position() Point
}

// Position lets a bare Point be used wherever a Locatable is expected
func (p Point) Position() Point {
	return p
}

// Distance returns the truncated Euclidean distance between two cells
// Adjacent cells are at distance 1 (diagonals included), a shared cell is 0
func Distance(a, b Point) int {
	dy := a.Y - b.Y
	dx := a.X - b.X
	return isqrt(dy*dy + dx*dx)
}

// Collision reports whether two cells coincide
func Collision(a, b Point) bool {
	return Distance(a, b) == 0
}

// WithinRadius reports whether truncated distance from the origin offset (dy, dx) is at most r
// floor(sqrt(n)) <= r  <=>  n < (r+1)^2
func WithinRadius(dy, dx, r int) bool {
	if r < 0 {
		return false
	}
	return dy*dy+dx*dx < (r+1)*(r+1)
}

// isqrt returns floor(sqrt(n)) for n >= 0
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	// Correct float rounding at perfect-square boundaries
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Sign returns -1, 0 or 1
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Bounds is an inclusive rectangle of playable cells
// Computed once at startup and passed to every component that clamps or enumerates cells
type Bounds struct {
	MinY, MaxY int
	MinX, MaxX int
}

// Screen layout reserved around the arena: one border cell on each side and
// status rows under the bottom border
const (
	screenBorder     = 1
	screenStatusRows = 4
)

// ScreenBounds derives the arena from a terminal size
func ScreenBounds(cols, rows int) Bounds {
	return Bounds{
		MinY: screenBorder,
		MaxY: rows - screenStatusRows - screenBorder,
		MinX: screenBorder,
		MaxX: cols - 2*screenBorder,
	}
}

// Width returns the number of columns
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Size returns the number of cells, zero for a degenerate rectangle
func (b Bounds) Size() int {
	if b.Width() <= 0 || b.Height() <= 0 {
		return 0
	}
	return b.Width() * b.Height()
}

// Center returns the middle cell
func (b Bounds) Center() Point {
	return Point{Y: b.MaxY / 2, X: b.MaxX / 2}
}

// Contains reports whether p lies inside the rectangle
func (b Bounds) Contains(p Point) bool {
	return p.Y >= b.MinY && p.Y <= b.MaxY && p.X >= b.MinX && p.X <= b.MaxX
}

// Clamp moves p to the nearest cell inside the rectangle
func (b Bounds) Clamp(p Point) Point {
	return Point{
		Y: max(b.MinY, min(b.MaxY, p.Y)),
		X: max(b.MinX, min(b.MaxX, p.X)),
	}
}
