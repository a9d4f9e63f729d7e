package geom

import "math"

// Bounds is the running envelope of every point added to it. The zero
// value encloses only the origin.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// NewBounds returns bounds covering a surface of the given size with its
// top-left corner at the origin.
func NewBounds(width, height float64) Bounds {
	return Bounds{Right: width, Bottom: height}
}

// Add grows b to enclose p.
func (b *Bounds) Add(p Point) {
	b.Left = math.Min(b.Left, p.X)
	b.Top = math.Min(b.Top, p.Y)
	b.Right = math.Max(b.Right, p.X)
	b.Bottom = math.Max(b.Bottom, p.Y)
}

// Expand returns b grown by margin on every side as a Rect.
func (b Bounds) Expand(margin float64) Rect {
	return Rect{
		X:      b.Left - margin,
		Y:      b.Top - margin,
		Width:  b.Right - b.Left + 2*margin,
		Height: b.Bottom - b.Top + 2*margin,
	}
}
