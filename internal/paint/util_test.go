package paint

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/example/paintpad/internal/geom"
)

var (
	approx   = cmpopts.EquateApprox(0, 1e-9)
	ignoreID = cmpopts.IgnoreTypes(Meta{})
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// op is one call made on a recorder.
type op struct {
	Name  string
	Args  []float64
	Color color.Color
}

// recorder is a Context that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) add(name string, args ...float64) {
	r.ops = append(r.ops, op{Name: name, Args: args})
}

func (r *recorder) SetStrokeColor(c color.Color) {
	r.ops = append(r.ops, op{Name: "color", Color: c})
}
func (r *recorder) SetLineWidth(w float64)        { r.add("width", w) }
func (r *recorder) BeginPath()                    { r.add("begin") }
func (r *recorder) MoveTo(x, y float64)           { r.add("moveTo", x, y) }
func (r *recorder) LineTo(x, y float64)           { r.add("lineTo", x, y) }
func (r *recorder) Arc(x, y, rad, a0, a1 float64) { r.add("arc", x, y, rad, a0, a1) }
func (r *recorder) Stroke()                       { r.add("stroke") }
func (r *recorder) StrokeRect(x, y, w, h float64) { r.add("strokeRect", x, y, w, h) }
func (r *recorder) ClearRect(x, y, w, h float64)  { r.add("clearRect", x, y, w, h) }
func (r *recorder) Translate(dx, dy float64)      { r.add("translate", dx, dy) }

// named returns the recorded calls called name.
func (r *recorder) named(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) reset() { r.ops = nil }

// testView is a 200×100 client canvas at (10, 20) with a 2× backing store.
func testView() Viewport {
	return NewViewport(geom.Pt(10, 20), 200, 100, 2)
}
