package paint

import (
	"fmt"

	"github.com/example/paintpad/internal/geom"
)

// Kind identifies the variant of a Shape.
type Kind int

const (
	KindPath Kind = iota
	KindRect
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is one committed element of a Drawing. The set of implementations
// is closed: *Path, *Rect and *Circle.
type Shape interface {
	Kind() Kind
	ShapeID() string
	meta() *Meta
}

// Meta carries what every shape has regardless of its kind.
type Meta struct {
	// ID is assigned when the shape is committed.
	ID string
}

func (m Meta) ShapeID() string { return m.ID }

// Path is a freehand polyline. It always holds at least one point and never
// two equal consecutive points.
type Path struct {
	Meta
	Points []geom.Point
}

// NewPath starts a path at p.
func NewPath(p geom.Point) *Path {
	return &Path{Points: []geom.Point{p}}
}

// Append adds p unless it equals the last point. It reports whether p was
// added.
func (s *Path) Append(p geom.Point) bool {
	if n := len(s.Points); n > 0 && s.Points[n-1] == p {
		return false
	}
	s.Points = append(s.Points, p)
	return true
}

// Rect is an axis-aligned rectangle. Width and Height keep the sign of the
// drag that produced them.
type Rect struct {
	Meta
	Origin        geom.Point
	Width, Height float64
}

func (s *Rect) bounds() geom.Rect {
	return geom.Rect{X: s.Origin.X, Y: s.Origin.Y, Width: s.Width, Height: s.Height}
}

// Circle is a circle outline.
type Circle struct {
	Meta
	Center geom.Point
	Radius float64
}

func (*Path) Kind() Kind   { return KindPath }
func (*Rect) Kind() Kind   { return KindRect }
func (*Circle) Kind() Kind { return KindCircle }

func (s *Path) meta() *Meta   { return &s.Meta }
func (s *Rect) meta() *Meta   { return &s.Meta }
func (s *Circle) meta() *Meta { return &s.Meta }

// Distance returns the distance from p to the outline of s.
func Distance(s Shape, p geom.Point) float64 {
	switch s := s.(type) {
	case *Path:
		return geom.DistanceToPolyline(p, s.Points)
	case *Rect:
		return geom.DistanceToRect(p, s.bounds())
	case *Circle:
		return geom.DistanceToCircle(p, s.Center, s.Radius)
	default:
		panic(fmt.Sprintf("paint: unknown shape %T", s))
	}
}
