package paint

import "github.com/example/paintpad/internal/geom"

// SelectThreshold is how close, in canvas units, a pointer has to be to a
// shape's outline to select it. Equal distance does not count.
const SelectThreshold = 10

// Drawing is the ordered list of committed shapes. Order is z-order: later
// shapes are drawn on top. Shapes are never edited or removed.
type Drawing struct {
	shapes []Shape
}

// Push appends s and returns its index.
func (d *Drawing) Push(s Shape) int {
	d.shapes = append(d.shapes, s)
	return len(d.shapes) - 1
}

// Len returns the number of committed shapes.
func (d *Drawing) Len() int { return len(d.shapes) }

// At returns the shape at index i.
func (d *Drawing) At(i int) Shape { return d.shapes[i] }

// Shapes returns the committed shapes in z-order. The caller must not
// modify the returned slice.
func (d *Drawing) Shapes() []Shape { return d.shapes }

// Closest returns the index of the shape whose outline is nearest to p and
// strictly closer than threshold. On equal distances the earlier shape
// wins. trace, if not nil, sees every distance computed.
func (d *Drawing) Closest(p geom.Point, threshold float64, trace func(i int, s Shape, dist float64)) (int, float64, bool) {
	best := -1
	bestDist := threshold
	for i, s := range d.shapes {
		dist := Distance(s, p)
		if trace != nil {
			trace(i, s, dist)
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return -1, 0, false
	}
	return best, bestDist, true
}
