package paint

import (
	"testing"

	"github.com/example/paintpad/internal/geom"
)

func TestClosestEmptyDrawing(t *testing.T) {
	var d Drawing
	if i, _, ok := d.Closest(geom.Pt(0, 0), SelectThreshold, nil); ok {
		t.Errorf("empty drawing matched shape %d", i)
	}
}

func TestClosestThreshold(t *testing.T) {
	var d Drawing
	d.Push(&Rect{Origin: geom.Pt(0, 0), Width: 100, Height: 100})

	if i, dist, ok := d.Closest(geom.Pt(50, -SelectThreshold), SelectThreshold, nil); ok {
		t.Errorf("shape %d at distance %v matched, want no match at the threshold", i, dist)
	}
	i, dist, ok := d.Closest(geom.Pt(50, -9.5), SelectThreshold, nil)
	if !ok || i != 0 {
		t.Fatalf("Closest = %d, %v, want shape 0", i, ok)
	}
	diff(t, 9.5, dist, approx)
}

func TestClosestPicksNearest(t *testing.T) {
	var d Drawing
	d.Push(&Circle{Center: geom.Pt(0, 0), Radius: 20})
	d.Push(&Path{Points: []geom.Point{geom.Pt(-50, 25), geom.Pt(50, 25)}})
	d.Push(&Rect{Origin: geom.Pt(-100, -100), Width: 200, Height: 200})

	// 3 from the circle, 2 from the path.
	i, _, ok := d.Closest(geom.Pt(0, 23), SelectThreshold, nil)
	if !ok || i != 1 {
		t.Errorf("Closest = %d, %v, want 1", i, ok)
	}
}

func TestClosestTieGoesToEarlierShape(t *testing.T) {
	var d Drawing
	d.Push(&Path{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}})
	d.Push(&Path{Points: []geom.Point{geom.Pt(0, 10), geom.Pt(10, 10)}})

	var seen []int
	i, _, ok := d.Closest(geom.Pt(5, 5), SelectThreshold, func(i int, _ Shape, _ float64) {
		seen = append(seen, i)
	})
	if !ok || i != 0 {
		t.Errorf("Closest = %d, %v, want 0", i, ok)
	}
	diff(t, []int{0, 1}, seen)
}

func TestClosestUsesEndpointDistanceOffSpan(t *testing.T) {
	var d Drawing
	d.Push(&Path{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}})

	// 9 above the middle of a 10-long segment reports the endpoint distance
	// sqrt(106), which is past the threshold.
	if i, dist, ok := d.Closest(geom.Pt(5, 9), SelectThreshold, nil); ok {
		t.Errorf("shape %d at distance %v matched", i, dist)
	}
	_, dist, ok := d.Closest(geom.Pt(5, 4), SelectThreshold, nil)
	if !ok {
		t.Fatal("no match 4 above the segment")
	}
	diff(t, 4.0, dist, approx)
}
