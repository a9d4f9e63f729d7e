package paint

import (
	"fmt"
	"image/color"
	"math"

	"github.com/example/paintpad/internal/geom"
)

// ClearMargin is how far beyond the drawn bounds a redraw clears, in
// canvas units.
const ClearMargin = 100

// Style holds the stroke settings used by Redraw.
type Style struct {
	Default   color.Color
	Highlight color.Color
	LineWidth float64
}

// DefaultStyle strokes black, highlights red, one unit wide.
var DefaultStyle = Style{
	Default:   color.Black,
	Highlight: color.RGBA{R: 0xff, A: 0xff},
	LineWidth: 1,
}

// Redraw clears the area covered by bounds plus ClearMargin and strokes
// every shape of d in order. The shape at index selected is stroked with
// the highlight colour; pass -1 for none.
func Redraw(ctx Context, d *Drawing, bounds geom.Bounds, selected int, style Style) {
	area := bounds.Expand(ClearMargin)
	ctx.ClearRect(area.X, area.Y, area.Width, area.Height)
	ctx.SetLineWidth(style.LineWidth)
	for i, s := range d.Shapes() {
		if i == selected {
			ctx.SetStrokeColor(style.Highlight)
		} else {
			ctx.SetStrokeColor(style.Default)
		}
		DrawShape(ctx, s)
	}
}

// DrawShape strokes the outline of s with the context's current settings.
func DrawShape(ctx Context, s Shape) {
	switch s := s.(type) {
	case *Path:
		ctx.BeginPath()
		for i, p := range s.Points {
			if i == 0 {
				ctx.MoveTo(p.X, p.Y)
			} else {
				ctx.LineTo(p.X, p.Y)
			}
		}
		ctx.Stroke()
	case *Rect:
		ctx.StrokeRect(s.Origin.X, s.Origin.Y, s.Width, s.Height)
	case *Circle:
		ctx.BeginPath()
		ctx.Arc(s.Center.X, s.Center.Y, s.Radius, 0, 2*math.Pi)
		ctx.Stroke()
	default:
		panic(fmt.Sprintf("paint: unknown shape %T", s))
	}
}
