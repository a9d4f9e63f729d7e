package paint

import "image/color"

// Context is a stateful 2D drawing surface in the style of an HTML canvas
// context. Coordinates are in canvas units; the context applies its own
// accumulated translation to everything it draws, ClearRect included.
type Context interface {
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc around (x, y), angles in radians.
	Arc(x, y, radius, startAngle, endAngle float64)
	// Stroke outlines the current path.
	Stroke()

	StrokeRect(x, y, width, height float64)
	ClearRect(x, y, width, height float64)

	// Translate moves the origin of all later drawing by (dx, dy). The
	// change persists.
	Translate(dx, dy float64)
}

// nopContext stands in while no surface is attached.
type nopContext struct{}

func (nopContext) SetStrokeColor(color.Color)    {}
func (nopContext) SetLineWidth(float64)          {}
func (nopContext) BeginPath()                    {}
func (nopContext) MoveTo(x, y float64)           {}
func (nopContext) LineTo(x, y float64)           {}
func (nopContext) Arc(x, y, r, a0, a1 float64)   {}
func (nopContext) Stroke()                       {}
func (nopContext) StrokeRect(x, y, w, h float64) {}
func (nopContext) ClearRect(x, y, w, h float64)  {}
func (nopContext) Translate(dx, dy float64)      {}
