package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/components"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Seed       int64
	Tick       int32
	Frame      int64
	FPS        int32
	Paused     bool
	Speed      float32
	TimeToMove float64
	Robots     int
	Collected  map[components.ResourceKind]int
	Remaining  map[components.ResourceKind]int
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	sections []SectionDescriptor
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		sections: hudSections(),
	}
}

func hudData(data any) HUDData {
	d, _ := data.(HUDData)
	return d
}

// hudSections describes the resource table: one collected and one
// remaining row per resource kind.
func hudSections() []SectionDescriptor {
	var collected, remaining []FieldDescriptor
	for _, k := range components.ResourceKinds {
		kind := k
		collected = append(collected, FieldDescriptor{
			ID:     "collected_" + kind.String(),
			Label:  kind.String(),
			Widget: WidgetText,
			Format: "%.0f",
			Color:  ResourceColor(kind),
			Getter: func(d any) float32 { return float32(hudData(d).Collected[kind]) },
		})
		remaining = append(remaining, FieldDescriptor{
			ID:     "remaining_" + kind.String(),
			Label:  kind.String(),
			Widget: WidgetText,
			Format: "%.0f",
			Color:  ResourceColor(kind),
			Getter: func(d any) float32 { return float32(hudData(d).Remaining[kind]) },
		})
	}

	return []SectionDescriptor{
		{ID: "collected", Title: "Collected", Fields: collected},
		{ID: "remaining", Title: "Remaining", Fields: remaining},
		{
			ID:    "movement",
			Title: "Movement",
			Fields: []FieldDescriptor{
				{ID: "robots", Label: "robots", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(hudData(d).Robots) }},
				{ID: "next_move", Label: "next move", Widget: WidgetBar, Range: DefaultRange(),
					Visible: func(d any) bool { return !hudData(d).Paused },
					Getter:  func(d any) float32 { return float32(hudData(d).TimeToMove) }},
			},
		},
	}
}

// Draw renders the title bar and the stats panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Seed: %d | Tick: %d | Frame: %d | FPS: %d", data.Seed, data.Tick, data.Frame, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	statusText := fmt.Sprintf("Running %.2gx", data.Speed)
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 55, 16, rl.Yellow)

	r := h.renderer
	x, y, width := int32(10), int32(80), int32(220)

	height := r.Theme.Padding * 2
	for _, sd := range h.sections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(x, y, width, height)

	y += r.Theme.Padding
	for _, sd := range h.sections {
		y = r.DrawSection(x+r.Theme.Padding+12, y, sd, data, width-r.Theme.Padding*2-12)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-system timings.
type PerfPanel struct {
	x, y int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the names in order with their average duration.
func (p *PerfPanel) Draw(names []string, avg func(string) time.Duration, total time.Duration) {
	x, y := p.x, p.y

	rl.DrawText("System Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range names {
		d := avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(d) / float64(total) * 100
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, d.Round(time.Microsecond), pct),
			x, y, 12, rl.LightGray,
		)
		y += 14
	}
}
