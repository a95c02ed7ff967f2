package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Simulation speed slider bounds.
const (
	MinSpeed = 0.25
	MaxSpeed = 8.0
)

// ControlState is the viewer's run control, edited by the controls panel
// and the keyboard.
type ControlState struct {
	Paused bool
	Speed  float32 // multiplier applied to frame time

	// StepRequested is set for one frame when a single movement tick was asked for.
	StepRequested bool
}

// NewControlState returns a running state at 1x.
func NewControlState() ControlState {
	return ControlState{Speed: 1}
}

// ScaledDT returns the simulated time for a frame, zero while paused.
func (s ControlState) ScaledDT(dt float32) float64 {
	if s.Paused {
		return 0
	}
	return float64(dt * s.Speed)
}

// ControlsPanel draws the raygui run controls.
type ControlsPanel struct {
	renderer *Renderer
	x, y     float32
	width    float32
}

// NewControlsPanel creates a controls panel anchored at (x, y).
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y float32) {
	c.x = x
	c.y = y
}

// Contains reports whether a screen point is over the panel.
func (c *ControlsPanel) Contains(px, py float32) bool {
	return px >= c.x && px <= c.x+c.width && py >= c.y && py <= c.y+c.height()
}

func (c *ControlsPanel) height() float32 {
	return 100
}

// Draw renders the buttons and slider and applies them to state.
func (c *ControlsPanel) Draw(state *ControlState) {
	r := c.renderer
	pad := float32(r.Theme.Padding)

	r.DrawPanel(int32(c.x), int32(c.y), int32(c.width), int32(c.height()))

	bw := (c.width - pad*3) / 2
	y := c.y + pad

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: c.x + pad, Y: y, Width: bw, Height: 30}, label) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: c.x + pad*2 + bw, Y: y, Width: bw, Height: 30}, "Step") {
		state.StepRequested = true
	}
	y += 40

	rl.DrawText("Speed", int32(c.x+pad), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 16
	state.Speed = gui.SliderBar(
		rl.Rectangle{X: c.x + pad + 30, Y: y, Width: c.width - pad*2 - 60, Height: 16},
		"0.25", "8",
		state.Speed, MinSpeed, MaxSpeed,
	)
}
