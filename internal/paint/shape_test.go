package paint

import (
	"math"
	"testing"

	"github.com/example/paintpad/internal/geom"
)

func TestPathSuppressesConsecutiveDuplicates(t *testing.T) {
	in := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(3, 3), geom.Pt(2, 2)}
	p := NewPath(in[0])
	for _, pt := range in[1:] {
		p.Append(pt)
	}
	if len(p.Points) >= len(in) {
		t.Fatalf("got %d points from %d inputs with a duplicate", len(p.Points), len(in))
	}
	diff(t, []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3), geom.Pt(2, 2)}, p.Points)
}

func TestDistanceByKind(t *testing.T) {
	tests := []struct {
		shape Shape
		p     geom.Point
		want  float64
	}{
		{&Path{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}}, geom.Pt(5, 4), 4},
		{&Path{Points: []geom.Point{geom.Pt(0, 0)}}, geom.Pt(0, 0), math.Inf(1)},
		{&Rect{Origin: geom.Pt(0, 0), Width: 1, Height: 1}, geom.Pt(0.5, 0.5), 0.5},
		{&Rect{Origin: geom.Pt(1, 1), Width: 1, Height: 1}, geom.Pt(0, 0), math.Sqrt2},
		{&Circle{Center: geom.Pt(0, 0), Radius: 5}, geom.Pt(0, 0), 5},
		{&Circle{Center: geom.Pt(0, 0), Radius: 5}, geom.Pt(0, 8), 3},
	}
	for _, tt := range tests {
		t.Run(tt.shape.Kind().String(), func(t *testing.T) {
			diff(t, tt.want, Distance(tt.shape, tt.p), approx)
		})
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != tool {
			t.Errorf("ParseTool(%q) = %v, want %v", tool.String(), got, tool)
		}
	}
	if got, _ := ParseTool(" Path "); got != ToolPath {
		t.Errorf("ParseTool(path) = %v, want pen", got)
	}
	if _, err := ParseTool("eraser"); err == nil {
		t.Error("ParseTool(eraser) succeeded")
	}
}
