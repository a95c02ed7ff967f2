// Package renderer draws the grid, its entities and the robots with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/camera"
	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/ui"
	"github.com/pthm-cable/swarm/world"
)

// NoiseSource returns the generation noise value of a cell.
type NoiseSource func(x, y int) float64

// GridRenderer draws the cell grid through a camera.
type GridRenderer struct {
	cam   *camera.Camera
	noise NoiseSource

	// ShowNoise tints empty cells by their noise value.
	ShowNoise bool
	// ShowGrid draws cell borders.
	ShowGrid bool
}

// NewGridRenderer creates a renderer for the given camera.
func NewGridRenderer(cam *camera.Camera, noise NoiseSource) *GridRenderer {
	return &GridRenderer{
		cam:      cam,
		noise:    noise,
		ShowGrid: true,
	}
}

// Draw renders background cells, then map entities, then robots.
func (r *GridRenderer) Draw(store *world.Store, selected *components.Position) {
	grid := store.Grid()
	s := r.cam.Scale()

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !r.cam.IsVisible(float32(x), float32(y)) {
				continue
			}
			sx, sy := r.cam.CellToScreen(float32(x), float32(y))
			rect := rl.Rectangle{X: sx, Y: sy, Width: s, Height: s}

			if r.ShowNoise && r.noise != nil {
				rl.DrawRectangleRec(rect, noiseColor(r.noise(x, y)))
			}
			if r.ShowGrid && s >= 4 {
				rl.DrawRectangleLinesEx(rect, 1, ui.GridLineColor)
			}
		}
	}

	var robots []world.Entry
	store.Each(func(e world.Entry) {
		if e.Kind == components.KindRobot {
			robots = append(robots, e)
			return
		}
		r.drawEntity(e, s)
	})
	for _, e := range robots {
		r.drawRobot(e, s)
	}

	if selected != nil {
		sx, sy := r.cam.CellToScreen(float32(selected.X), float32(selected.Y))
		rl.DrawRectangleLinesEx(rl.Rectangle{X: sx, Y: sy, Width: s, Height: s}, 2, ui.HighlightColor)
	}
}

func (r *GridRenderer) drawEntity(e world.Entry, s float32) {
	if !r.cam.IsVisible(float32(e.Position.X), float32(e.Position.Y)) {
		return
	}
	sx, sy := r.cam.CellToScreen(float32(e.Position.X), float32(e.Position.Y))

	switch e.Kind {
	case components.KindObstacle:
		rl.DrawRectangleRec(rl.Rectangle{X: sx + 1, Y: sy + 1, Width: s - 2, Height: s - 2}, ui.ObstacleColor)
	case components.KindResource:
		rl.DrawCircleV(rl.Vector2{X: sx + s/2, Y: sy + s/2}, s*0.3, ui.ResourceColor(e.Resource))
	case components.KindBase:
		inset := s * 0.15
		rl.DrawRectangleLinesEx(rl.Rectangle{X: sx + inset, Y: sy + inset, Width: s - 2*inset, Height: s - 2*inset}, 2, ui.BaseColor)
	}
}

// drawRobot draws a triangle marker; several robots on one cell stack
// slightly so each stays visible.
func (r *GridRenderer) drawRobot(e world.Entry, s float32) {
	if !r.cam.IsVisible(float32(e.Position.X), float32(e.Position.Y)) {
		return
	}
	sx, sy := r.cam.CellToScreen(float32(e.Position.X), float32(e.Position.Y))
	off := float32(e.Robot.ID%3-1) * s * 0.1

	cx := sx + s/2 + off
	cy := sy + s/2 + off
	h := s * 0.35
	rl.DrawTriangle(
		rl.Vector2{X: cx, Y: cy - h},
		rl.Vector2{X: cx - h, Y: cy + h},
		rl.Vector2{X: cx + h, Y: cy + h},
		ui.RobotColor(e.Robot.Kind),
	)

	if s >= 24 {
		rl.DrawText(e.Robot.Name, int32(sx), int32(sy+s-10), 10, rl.White)
	}
}

// noiseColor maps a noise value in [0,1] to a dark blue-grey ramp.
func noiseColor(n float64) rl.Color {
	v := uint8(20 + n*60)
	return rl.Color{R: v, G: v + 4, B: v + 12, A: 255}
}
