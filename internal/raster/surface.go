// Package raster draws onto in-memory images. Its Surface implements
// paint.Context on top of gg, so the same redraw code that feeds the screen
// can produce PNG snapshots and be checked pixel by pixel in tests.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/example/paintpad/internal/paint"
)

var ErrEmptySize = errors.New("raster: surface size must be positive")

// Surface is a paint.Context backed by an RGBA image.
type Surface struct {
	dc *gg.Context
	bg *image.Uniform
}

var _ paint.Context = (*Surface)(nil)

// NewSurface returns a transparent width×height surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySize, width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	return &Surface{dc: dc, bg: image.NewUniform(color.Transparent)}, nil
}

// SetBackground fills the whole surface with c and makes c the colour
// ClearRect paints.
func (s *Surface) SetBackground(c color.Color) {
	s.bg = image.NewUniform(c)
	xdraw.Draw(s.Image(), s.Image().Bounds(), s.bg, image.Point{}, xdraw.Src)
}

func (s *Surface) SetStrokeColor(c color.Color) { s.dc.SetColor(c) }
func (s *Surface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }
func (s *Surface) BeginPath()                   { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64)          { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)          { s.dc.LineTo(x, y) }
func (s *Surface) Stroke()                      { s.dc.Stroke() }
func (s *Surface) Translate(dx, dy float64)     { s.dc.Translate(dx, dy) }

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

// StrokeRect outlines a rectangle. Unlike an HTML canvas, gg has no way to
// stroke a shape beside the current path, so the current path is dropped.
func (s *Surface) StrokeRect(x, y, width, height float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, width, height)
	s.dc.Stroke()
}

// ClearRect resets the pixels under a rectangle to the background colour.
// The rectangle is moved by the current translation.
func (s *Surface) ClearRect(x, y, width, height float64) {
	x0, y0 := s.dc.TransformPoint(x, y)
	x1, y1 := s.dc.TransformPoint(x+width, y+height)
	r := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	)
	img := s.Image()
	xdraw.Draw(img, r.Intersect(img.Bounds()), s.bg, image.Point{}, xdraw.Src)
}

// Image returns the pixels drawn so far. The image is shared with the
// surface.
func (s *Surface) Image() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// EncodePNG writes the surface as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// WritePNG writes the surface to the file at path.
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
