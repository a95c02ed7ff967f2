// Noise preview tool - interactive map classification preview with sliders.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/systems"
	"github.com/pthm-cable/swarm/ui"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the generation parameters being previewed.
type PreviewParams struct {
	Algorithm  string
	Scale      float32
	Thresholds config.ClassificationConfig
	Seed       int64
	Width      int
	Height     int
}

func defaultParams() PreviewParams {
	cfg := config.Defaults()
	return PreviewParams{
		Algorithm:  cfg.Noise.Algorithm,
		Scale:      float32(cfg.Noise.Scale),
		Thresholds: cfg.Classification,
		Seed:       1,
		Width:      cfg.Grid.Width,
		Height:     cfg.Grid.Height,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Map Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	img := rl.GenImageColor(params.Width, params.Height, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var bands systems.BandCounts
	showRaw := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			values, err := sampleField(params)
			if err == nil {
				bands = updateTexture(texture, values, systems.ThresholdsFromConfig(params.Thresholds), showRaw)
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(params.Width), Height: float32(params.Height)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Band counts
		statsY := int32(previewSize + 25)
		for c := systems.CellClass(0); c < systems.NumCellClasses; c++ {
			rl.DrawText(fmt.Sprintf("%-16s %5d", c.String(), bands[c]), 15, statsY, 16, rl.DarkGray)
			statsY += 20
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Map Generation Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label string, value *float64, min, max float32) {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf("%.2f", min), fmt.Sprintf("%.2f", max),
				float32(*value), min, max,
			)
			rl.DrawText(fmt.Sprintf("%.3f", *value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if float64(nv) != *value {
				*value = float64(nv)
				needsRegen = true
			}
			panelY += 35
		}

		scale := float64(params.Scale)
		slider("Scale (sample spacing per cell)", &scale, 0.01, 0.5)
		params.Scale = float32(scale)

		t := &params.Thresholds
		slider("Obstacle threshold", &t.Obstacle, 0.5, 1.0)
		slider("Energy threshold", &t.Energy, 0.5, 1.0)
		slider("Mineral threshold", &t.Mineral, 0.5, 1.0)
		slider("Scientific site threshold", &t.ScientificSite, 0.5, 1.0)
		enforceDescending(t)

		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		algoLabel := "Use OpenSimplex"
		if params.Algorithm == config.NoiseOpenSimplex {
			algoLabel = "Use Perlin"
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, algoLabel) {
			if params.Algorithm == config.NoiseOpenSimplex {
				params.Algorithm = config.NoisePerlin
			} else {
				params.Algorithm = config.NoiseOpenSimplex
			}
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(showRaw, "Show Bands", "Show Noise")) {
			showRaw = !showRaw
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			text := ""
			for _, line := range yamlLines(params) {
				text += line + "\n"
			}
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func yamlLines(p PreviewParams) []string {
	return []string{
		"noise:",
		fmt.Sprintf("  algorithm: %s", p.Algorithm),
		fmt.Sprintf("  scale: %.3f", p.Scale),
		"classification:",
		fmt.Sprintf("  obstacle: %.3f", p.Thresholds.Obstacle),
		fmt.Sprintf("  energy: %.3f", p.Thresholds.Energy),
		fmt.Sprintf("  mineral: %.3f", p.Thresholds.Mineral),
		fmt.Sprintf("  scientific_site: %.3f", p.Thresholds.ScientificSite),
	}
}

// enforceDescending pulls lower thresholds down so the set stays ordered.
func enforceDescending(t *config.ClassificationConfig) {
	if t.Energy > t.Obstacle {
		t.Energy = t.Obstacle
	}
	if t.Mineral > t.Energy {
		t.Mineral = t.Energy
	}
	if t.ScientificSite > t.Mineral {
		t.ScientificSite = t.Mineral
	}
}

// sampleField evaluates the noise field over the preview grid, row-major.
func sampleField(p PreviewParams) ([]float64, error) {
	sampler, err := systems.NewSampler(p.Algorithm, p.Seed)
	if err != nil {
		return nil, err
	}
	field := systems.NewNoiseField(sampler, float64(p.Scale))

	values := make([]float64, 0, p.Width*p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			values = append(values, field.ValueAt(x, y))
		}
	}
	return values, nil
}

// updateTexture colors each cell by band (or raw noise) and returns the
// band tally.
func updateTexture(texture rl.Texture2D, values []float64, t systems.Thresholds, raw bool) systems.BandCounts {
	var bands systems.BandCounts
	pixels := make([]color.RGBA, len(values))
	for i, v := range values {
		class := t.Classify(v)
		bands[class]++

		if raw {
			g := uint8(v * 255)
			pixels[i] = color.RGBA{R: g, G: g, B: g, A: 255}
			continue
		}

		switch class {
		case systems.CellObstacle:
			pixels[i] = ui.ObstacleColor
		case systems.CellEmpty:
			pixels[i] = ui.BackgroundColor
		default:
			kind, _ := class.Resource()
			pixels[i] = ui.ResourceColor(kind)
		}
	}
	rl.UpdateTexture(texture, pixels)
	return bands
}
