package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/camera"
)

// handleInput processes keyboard and mouse input for one frame.
func (v *Viewer) handleInput(dt float32) {
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		v.controls.Paused = !v.controls.Paused
	}
	if rl.IsKeyPressed(rl.KeyS) {
		v.controls.StepRequested = true
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		v.setSpeed(v.controls.Speed / 2)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		v.setSpeed(v.controls.Speed * 2)
	}

	if rl.IsKeyPressed(rl.KeyG) {
		v.grid.ShowGrid = !v.grid.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyN) {
		v.grid.ShowNoise = !v.grid.ShowNoise
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.showPerf = !v.showPerf
	}

	v.handleCameraInput(dt)

	mouse := rl.GetMousePosition()
	if v.controlsPanel.Contains(mouse.X, mouse.Y) {
		return
	}
	v.inspector.HandleInput(mouse.X, mouse.Y, v.camera)
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	v.camera.Resize(w, h)
	v.inspector.Resize(int32(w))
	v.controlsPanel.SetPosition(10, h-controlsHeight)
	v.perfPanel.SetPosition(int32(w)-200, int32(h)-120)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *Viewer) handleCameraInput(dt float32) {
	v.camera.Update(camera.Input{
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyRight),
		Up:    rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyDown),
		Wheel: rl.GetMouseWheelMove(),
	}, dt)

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}
