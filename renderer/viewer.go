package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/camera"
	"github.com/pthm-cable/swarm/game"
	"github.com/pthm-cable/swarm/inspector"
	"github.com/pthm-cable/swarm/ui"
)

const (
	controlsWidth  = 240
	controlsHeight = 130

	controlsLegend = "[Space] pause  [S] step  [<][>] speed  [Arrows] pan  [Wheel] zoom  [G] grid  [N] noise  [P] perf  [Home] reset"
)

// Viewer is the graphical host: it feeds frame time to the game and draws
// the grid, HUD and panels. It only reads simulation state.
type Viewer struct {
	game *game.Game

	camera        *camera.Camera
	grid          *GridRenderer
	hud           *ui.HUD
	controlsPanel *ui.ControlsPanel
	perfPanel     *ui.PerfPanel
	inspector     *inspector.Inspector

	controls ui.ControlState
	showPerf bool
}

// NewViewer creates a viewer sized to the current window.
func NewViewer(g *game.Game) *Viewer {
	cfg := g.Config()
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	cam := camera.New(cfg.Camera, w, h, g.Grid().Width(), g.Grid().Height())

	return &Viewer{
		game:          g,
		camera:        cam,
		grid:          NewGridRenderer(cam, g.Noise),
		hud:           ui.NewHUD(),
		controlsPanel: ui.NewControlsPanel(10, h-controlsHeight, controlsWidth),
		perfPanel:     ui.NewPerfPanel(int32(w)-200, int32(h)-120),
		inspector:     inspector.NewInspector(int32(w)),
		controls:      ui.NewControlState(),
	}
}

func (v *Viewer) setSpeed(s float32) {
	if s < ui.MinSpeed {
		s = ui.MinSpeed
	}
	if s > ui.MaxSpeed {
		s = ui.MaxSpeed
	}
	v.controls.Speed = s
}

// Paused reports whether the simulation is paused.
func (v *Viewer) Paused() bool {
	return v.controls.Paused
}

// Update handles input and advances the game by the frame time.
func (v *Viewer) Update() {
	dt := rl.GetFrameTime()
	v.handleInput(dt)

	if v.controls.StepRequested {
		v.controls.StepRequested = false
		v.game.Step()
		return
	}
	v.game.Advance(v.controls.ScaledDT(dt))
}

// Draw renders one frame.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ui.BackgroundColor)

	sel, ok := v.inspector.Selected()
	if ok {
		v.grid.Draw(v.game.Store(), &sel)
	} else {
		v.grid.Draw(v.game.Store(), nil)
	}

	v.hud.Draw(ui.HUDData{
		Title:      "Robot Swarm",
		Seed:       v.game.Seed(),
		Tick:       v.game.Tick(),
		Frame:      v.game.Frame(),
		FPS:        rl.GetFPS(),
		Paused:     v.controls.Paused,
		Speed:      v.controls.Speed,
		TimeToMove: v.game.TimeToMove() / v.game.Config().Scheduler.MovePeriod,
		Robots:     len(v.game.Store().Robots()),
		Collected:  v.game.Collected(),
		Remaining:  v.game.Remaining(),
	})
	v.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)

	if v.showPerf {
		perf := v.game.Perf()
		v.perfPanel.Draw(perf.SortedNames(), perf.Avg, perf.Total())
	}

	v.inspector.Draw(v.game.Store())
	v.controlsPanel.Draw(&v.controls)

	rl.EndDrawing()
}
