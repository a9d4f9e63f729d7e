package geom

import "testing"

func TestBoundsAdd(t *testing.T) {
	b := NewBounds(100, 50)
	pts := []Point{Pt(-10, 20), Pt(120, -5), Pt(30, 70)}
	for _, p := range pts {
		b.Add(p)
	}
	diff(t, Bounds{Left: -10, Top: -5, Right: 120, Bottom: 70}, b)

	// Points already inside change nothing.
	b.Add(Pt(0, 0))
	diff(t, Bounds{Left: -10, Top: -5, Right: 120, Bottom: 70}, b)
}

func TestBoundsExpand(t *testing.T) {
	b := Bounds{Left: 0, Top: 10, Right: 40, Bottom: 30}
	diff(t, Rect{X: -100, Y: -90, Width: 240, Height: 220}, b.Expand(100))
}
