// Package inspector shows the components of every entity on a selected cell.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/camera"
	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/world"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30
	SectionGap   = 6
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector manages cell selection and panel rendering.
type Inspector struct {
	selected    components.Position
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector docked to the right screen edge.
func NewInspector(screenWidth int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 10,
		panelY: 10,
	}
}

// Resize re-docks the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleInput selects the clicked cell. Right click or Escape deselects.
// Returns true when the click was consumed by the panel.
func (ins *Inspector) HandleInput(mouseX, mouseY float32, cam *camera.Camera) bool {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
		return false
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return false
	}

	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if int32(mouseX) >= closeX && int32(mouseX) <= closeX+20 &&
			int32(mouseY) >= closeY && int32(mouseY) <= closeY+20 {
			ins.Deselect()
			return true
		}
		if int32(mouseX) >= ins.panelX && int32(mouseX) <= ins.panelX+PanelWidth {
			return true
		}
	}

	x, y := cam.ScreenToCell(mouseX, mouseY)
	ins.Select(components.Position{X: x, Y: y})
	return false
}

// Select marks a cell for inspection.
func (ins *Inspector) Select(p components.Position) {
	ins.selected = p
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the selected cell.
func (ins *Inspector) Selected() (components.Position, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel listing every entity on the selected cell.
func (ins *Inspector) Draw(store *world.Store) {
	if !ins.hasSelected {
		return
	}

	entries := store.At(ins.selected)
	sections := make([][]Section, len(entries))
	for i, e := range entries {
		sections[i] = EntrySections(e)
	}

	panelHeight := calculatePanelHeight(sections)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("CELL %s", ins.selected), ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	if len(entries) == 0 {
		rl.DrawText("(empty)", x, y, 14, ColorTextDim)
		return
	}

	for i, e := range entries {
		ins.drawSectionHeader(x, y, fmt.Sprintf("%s #%d", e.Kind, e.ID))
		y += 20
		for _, s := range sections[i] {
			if s.Title == "Identity" {
				continue
			}
			for _, f := range s.Fields {
				y += DrawField(x, y, f)
			}
		}
		y += SectionGap
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// calculatePanelHeight computes the panel height for the given entities.
func calculatePanelHeight(entities [][]Section) int32 {
	height := int32(HeaderHeight + PanelPadding*2)
	if len(entities) == 0 {
		return height + 18
	}
	for _, sections := range entities {
		height += 20 + SectionGap
		for _, s := range sections {
			if s.Title == "Identity" {
				continue
			}
			for _, f := range s.Fields {
				height += fieldHeight(f)
			}
		}
	}
	return height
}
