// Package geom holds the plane geometry used for shape selection: points,
// point-to-segment and point-to-outline distances, and the running bounds of
// everything drawn so far.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in canvas device-pixel space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) (dx, dy float64) {
	return p.X - o.X, p.Y - o.Y
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rect is an axis-aligned rectangle given by its origin corner and a signed
// size. A negative width or height extends left or up from the origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Outline returns the four corners of r, repeating the first to close it.
func (r Rect) Outline() []Point {
	return []Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
		{r.X, r.Y},
	}
}
