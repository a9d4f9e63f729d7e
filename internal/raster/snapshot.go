package raster

import (
	"image/color"

	"github.com/example/paintpad/internal/paint"
)

// Snapshot renders what c currently shows onto a new width×height surface
// filled with bg.
func Snapshot(c *paint.Controller, width, height int, bg color.Color) (*Surface, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	s.SetBackground(bg)
	c.RenderTo(s)
	return s, nil
}
