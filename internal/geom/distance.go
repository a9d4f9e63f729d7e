package geom

import "math"

// DistanceToSegment returns the distance from p to the segment seg.
//
// The perpendicular distance comes from the implicit line equation
// a·x + b·y + c = 0 through both endpoints. If the hypotenuse formed by
// either endpoint distance and the perpendicular is longer than the
// segment, p is taken to lie off the segment's span and the nearer
// endpoint wins. Points just past a segment end therefore report the
// perpendicular distance. A degenerate segment (both endpoints equal) has
// no line, so the distance to that single point is returned.
func DistanceToSegment(p Point, seg [2]Point) float64 {
	from, to := seg[0], seg[1]

	a := to.Y - from.Y
	b := from.X - to.X
	c := to.X*from.Y - from.X*to.Y

	length := math.Hypot(a, b)
	fromDist := p.Distance(from)
	if length == 0 {
		return fromDist
	}
	toDist := p.Distance(to)
	perp := math.Abs(a*p.X+b*p.Y+c) / length

	if math.Max(math.Hypot(fromDist, perp), math.Hypot(toDist, perp)) > length {
		return math.Min(fromDist, toDist)
	}
	return perp
}

// DistanceToPolyline returns the minimum distance from p to any segment
// between consecutive points. Fewer than two points form no segment and
// yield +Inf.
func DistanceToPolyline(p Point, points []Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		if d := DistanceToSegment(p, [2]Point{points[i-1], points[i]}); d < best {
			best = d
		}
	}
	return best
}

// DistanceToRect returns the distance from p to the boundary of r. Points
// inside the rectangle measure to the nearest edge, not zero.
func DistanceToRect(p Point, r Rect) float64 {
	return DistanceToPolyline(p, r.Outline())
}

// DistanceToCircle returns the distance from p to the circumference of the
// circle with the given center and radius.
func DistanceToCircle(p Point, center Point, radius float64) float64 {
	return math.Abs(p.Distance(center) - radius)
}
