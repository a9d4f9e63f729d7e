package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/paintpad/internal/paint"
)

// whiteSubImage is the texture strokes are drawn with. It is created on
// first use.
var whiteSubImage *ebiten.Image

func strokeTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenSurface draws onto an offscreen ebiten image with the paint.Context
// calls the controller makes.
type screenSurface struct {
	dst    *ebiten.Image
	color  color.NRGBA
	width  float32
	dx, dy float64
	path   vector.Path

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ paint.Context = (*screenSurface)(nil)

func newScreenSurface(dst *ebiten.Image) *screenSurface {
	return &screenSurface{dst: dst, color: color.NRGBA{A: 0xff}, width: 1}
}

func (s *screenSurface) SetStrokeColor(c color.Color) {
	s.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *screenSurface) SetLineWidth(w float64) { s.width = float32(w) }
func (s *screenSurface) BeginPath()             { s.path = vector.Path{} }
func (s *screenSurface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *screenSurface) pt(x, y float64) (float32, float32) {
	return float32(x + s.dx), float32(y + s.dy)
}

func (s *screenSurface) MoveTo(x, y float64) { s.path.MoveTo(s.pt(x, y)) }
func (s *screenSurface) LineTo(x, y float64) { s.path.LineTo(s.pt(x, y)) }

func (s *screenSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	cx, cy := s.pt(x, y)
	s.path.Arc(cx, cy, float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (s *screenSurface) Stroke() { s.stroke(&s.path) }

func (s *screenSurface) StrokeRect(x, y, width, height float64) {
	var p vector.Path
	x0, y0 := s.pt(x, y)
	x1, y1 := s.pt(x+width, y+height)
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	s.stroke(&p)
}

func (s *screenSurface) ClearRect(x, y, width, height float64) {
	x0, y0 := x+s.dx, y+s.dy
	x1, y1 := x0+width, y0+height
	r := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *screenSurface) stroke(p *vector.Path) {
	op := &vector.StrokeOptions{
		Width:    s.width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vertices, s.indices = p.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(s.color.R) / 0xff
		v.ColorG = float32(s.color.G) / 0xff
		v.ColorB = float32(s.color.B) / 0xff
		v.ColorA = float32(s.color.A) / 0xff
	}
	s.dst.DrawTriangles(s.vertices, s.indices, strokeTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
