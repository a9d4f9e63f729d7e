package paint

import "github.com/example/paintpad/internal/geom"

// Viewport describes where the canvas sits on screen and how its backing
// store relates to its on-screen size.
type Viewport struct {
	// Offset is the canvas's top-left corner in client coordinates.
	Offset geom.Point
	// ClientWidth and ClientHeight are the on-screen size of the canvas.
	ClientWidth, ClientHeight float64
	// DeviceWidth and DeviceHeight are the size of the backing store,
	// usually the client size times the device scale factor.
	DeviceWidth, DeviceHeight float64
	// Pan is the translation applied by move gestures so far.
	Pan geom.Point
}

// NewViewport returns a viewport for a canvas of the given client size at
// offset, backed by a store scaled by factor.
func NewViewport(offset geom.Point, clientWidth, clientHeight, factor float64) Viewport {
	return Viewport{
		Offset:       offset,
		ClientWidth:  clientWidth,
		ClientHeight: clientHeight,
		DeviceWidth:  clientWidth * factor,
		DeviceHeight: clientHeight * factor,
	}
}

// Scale returns the backing-store pixels per client pixel on each axis. A
// zero-sized client area scales by 1.
func (v Viewport) Scale() (sx, sy float64) {
	sx, sy = 1, 1
	if v.ClientWidth > 0 {
		sx = v.DeviceWidth / v.ClientWidth
	}
	if v.ClientHeight > 0 {
		sy = v.DeviceHeight / v.ClientHeight
	}
	return sx, sy
}

// ToCanvas converts a client position to canvas coordinates.
func (v Viewport) ToCanvas(client geom.Point) geom.Point {
	sx, sy := v.Scale()
	return geom.Point{
		X: (client.X-v.Offset.X)*sx - v.Pan.X,
		Y: (client.Y-v.Offset.Y)*sy - v.Pan.Y,
	}
}

// Contains reports whether a client position lies over the canvas.
func (v Viewport) Contains(client geom.Point) bool {
	return client.X >= v.Offset.X && client.X < v.Offset.X+v.ClientWidth &&
		client.Y >= v.Offset.Y && client.Y < v.Offset.Y+v.ClientHeight
}
