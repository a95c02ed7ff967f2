// Package camera provides a pan/zoom viewport over the cell grid.
package camera

import (
	"math"

	"github.com/pthm-cable/swarm/config"
)

// Camera controls the viewport into the grid. Coordinates are in cells;
// the grid wraps toroidally like robot movement.
type Camera struct {
	// Position is the camera center in cell coordinates
	X, Y float32

	// Zoom level (1.0 = CellSize pixels per cell)
	Zoom     float32
	CellSize float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Grid dimensions in cells
	GridW, GridH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	PanSpeed float32 // cells per second at zoom 1
	ZoomStep float32 // zoom change per wheel notch
}

// Input is one frame of camera controls.
type Input struct {
	Left, Right, Up, Down bool
	Wheel                 float32
}

// New creates a camera centered on the grid with 1:1 zoom.
func New(cfg config.CameraConfig, viewportW, viewportH float32, gridW, gridH int) *Camera {
	return &Camera{
		X:         float32(gridW) / 2,
		Y:         float32(gridH) / 2,
		Zoom:      1.0,
		CellSize:  float32(cfg.CellSize),
		ViewportW: viewportW,
		ViewportH: viewportH,
		GridW:     float32(gridW),
		GridH:     float32(gridH),
		MinZoom:   float32(cfg.MinZoom),
		MaxZoom:   float32(cfg.MaxZoom),
		PanSpeed:  float32(cfg.PanSpeed),
		ZoomStep:  float32(cfg.ZoomStep),
	}
}

// Scale returns the on-screen size of one cell in pixels.
func (c *Camera) Scale() float32 {
	return c.CellSize * c.Zoom
}

// CellToScreen converts cell coordinates to screen pixels, taking the
// shortest way around the wrapped grid.
func (c *Camera) CellToScreen(cx, cy float32) (sx, sy float32) {
	dx := toroidalDelta(cx, c.X, c.GridW)
	dy := toroidalDelta(cy, c.Y, c.GridH)

	s := c.Scale()
	sx = c.ViewportW/2 + dx*s
	sy = c.ViewportH/2 + dy*s
	return sx, sy
}

// ScreenToCell returns the cell under a screen position.
func (c *Camera) ScreenToCell(sx, sy float32) (x, y int) {
	s := c.Scale()
	wx := mod(c.X+(sx-c.ViewportW/2)/s, c.GridW)
	wy := mod(c.Y+(sy-c.ViewportH/2)/s, c.GridH)
	return int(wx), int(wy)
}

// IsVisible reports whether the cell whose top-left corner is (cx, cy)
// overlaps the viewport.
func (c *Camera) IsVisible(cx, cy float32) bool {
	s := c.Scale()
	sx, sy := c.CellToScreen(cx, cy)
	return sx+s >= 0 && sy+s >= 0 && sx <= c.ViewportW && sy <= c.ViewportH
}

// Update applies one frame of input. Pan speed scales inversely with zoom.
func (c *Camera) Update(in Input, dt float32) {
	step := c.PanSpeed * dt / c.Zoom
	var dx, dy float32
	if in.Right {
		dx += step
	}
	if in.Left {
		dx -= step
	}
	if in.Down {
		dy += step
	}
	if in.Up {
		dy -= step
	}
	if dx != 0 || dy != 0 {
		c.Pan(dx, dy)
	}
	if in.Wheel != 0 {
		c.ZoomBy(1 + in.Wheel*c.ZoomStep)
	}
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in cells, wrapping at the edges.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx, c.GridW)
	c.Y = mod(c.Y+dy, c.GridH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the grid center at zoom 1.
func (c *Camera) Reset() {
	c.X = c.GridW / 2
	c.Y = c.GridH / 2
	c.Zoom = 1.0
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
