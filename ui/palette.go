package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/components"
)

// Entity colors shared by the grid renderer and the HUD legend.
var (
	BackgroundColor = rl.Color{R: 18, G: 22, B: 28, A: 255}
	GridLineColor   = rl.Color{R: 40, G: 46, B: 54, A: 255}
	ObstacleColor   = rl.Color{R: 110, G: 110, B: 120, A: 255}
	BaseColor       = rl.Color{R: 230, G: 230, B: 240, A: 255}
	HighlightColor  = rl.Color{R: 255, G: 220, B: 80, A: 255}
)

// ResourceColor returns the fill color for a resource kind.
func ResourceColor(k components.ResourceKind) rl.Color {
	switch k {
	case components.ResourceEnergy:
		return rl.Color{R: 250, G: 200, B: 40, A: 255}
	case components.ResourceMineral:
		return rl.Color{R: 80, G: 170, B: 230, A: 255}
	case components.ResourceScientificSite:
		return rl.Color{R: 190, G: 110, B: 230, A: 255}
	default:
		return rl.Magenta
	}
}

// RobotColor returns the marker color for a robot kind.
func RobotColor(k components.RobotKind) rl.Color {
	switch k {
	case components.RobotExplorer:
		return rl.Color{R: 90, G: 220, B: 120, A: 255}
	case components.RobotCollector:
		return rl.Color{R: 240, G: 90, B: 70, A: 255}
	case components.RobotVisitor:
		return rl.Color{R: 80, G: 220, B: 220, A: 255}
	default:
		return rl.White
	}
}
