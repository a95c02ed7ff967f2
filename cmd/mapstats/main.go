// Map statistics tool - generates maps over many seeds and reports the
// spread of band counts.
//
// Usage: go run ./cmd/mapstats -seeds 100
package main

import (
	"flag"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/systems"
)

// BandStats summarizes one band's cell count across seeds.
type BandStats struct {
	Class  systems.CellClass
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Collect generates one map per seed and returns per-band statistics.
func Collect(cfg *config.Config, seeds []int64) ([]BandStats, error) {
	counts := make([][]float64, systems.NumCellClasses)
	thresholds := systems.ThresholdsFromConfig(cfg.Classification)

	for _, seed := range seeds {
		sampler, err := systems.NewSampler(cfg.Noise.Algorithm, seed)
		if err != nil {
			return nil, err
		}
		gen := systems.NewGenerator(systems.NewNoiseField(sampler, cfg.Noise.Scale), thresholds, seed)
		generation, err := gen.Generate(cfg.Grid.Width, cfg.Grid.Height)
		if err != nil {
			return nil, err
		}
		for c, n := range generation.Bands {
			counts[c] = append(counts[c], float64(n))
		}
	}

	out := make([]BandStats, 0, len(counts))
	for c, values := range counts {
		if len(values) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(values, nil)
		if len(values) < 2 {
			std = 0
		}
		bs := BandStats{Class: systems.CellClass(c), Mean: mean, StdDev: std, Min: values[0], Max: values[0]}
		for _, v := range values[1:] {
			if v < bs.Min {
				bs.Min = v
			}
			if v > bs.Max {
				bs.Max = v
			}
		}
		out = append(out, bs)
	}
	return out, nil
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seeds := flag.Int("seeds", 50, "Number of maps to generate")
	firstSeed := flag.Int64("first-seed", 1, "Seed of the first map; later maps count up")
	width := flag.Int("width", 0, "Grid width (0 = use config)")
	height := flag.Int("height", 0, "Grid height (0 = use config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Grid.Width = *width
	}
	if *height > 0 {
		cfg.Grid.Height = *height
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = *firstSeed + int64(i)
	}

	results, err := Collect(cfg, list)
	if err != nil {
		slog.Error("failed to generate maps", "error", err)
		os.Exit(1)
	}

	cells := float64(cfg.Grid.Width * cfg.Grid.Height)
	for _, bs := range results {
		slog.Info("band",
			"class", bs.Class.String(),
			"mean", bs.Mean,
			"stddev", bs.StdDev,
			"min", bs.Min,
			"max", bs.Max,
			"fraction", bs.Mean/cells,
		)
	}
	slog.Info("done",
		"maps", len(list),
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"noise", cfg.Noise.Algorithm,
	)
}
