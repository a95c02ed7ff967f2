package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/systems"
)

// EvalRecord is one row of optimize_log.csv.
type EvalRecord struct {
	Eval           int     `csv:"eval"`
	Fitness        float64 `csv:"fitness"`
	Obstacle       float64 `csv:"obstacle"`
	Energy         float64 `csv:"energy"`
	Mineral        float64 `csv:"mineral"`
	ScientificSite float64 `csv:"scientific_site"`
	ObstacleFrac   float64 `csv:"obstacle_frac"`
	ResourceFrac   float64 `csv:"resource_frac"`
}

// formatDuration formats a duration as MMmSSs or HHhMMmSSs.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 5, "Number of noise maps per evaluation")
	maxEvals := flag.Int("max-evals", 400, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	obstacle := flag.Float64("target-obstacle", 0.05, "Target fraction of obstacle cells")
	energy := flag.Float64("target-energy", 0.04, "Target fraction of energy cells")
	mineral := flag.Float64("target-mineral", 0.03, "Target fraction of mineral cells")
	scientific := flag.Float64("target-scientific", 0.02, "Target fraction of scientific site cells")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *outputDir == "" {
		slog.Error("--output is required")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	targets := Targets{Obstacle: *obstacle, Energy: *energy, Mineral: *mineral, ScientificSite: *scientific}
	evaluator, err := NewFitnessEvaluator(params, evalSeeds, baseCfg, targets)
	if err != nil {
		slog.Error("failed to create evaluator", "error", err)
		os.Exit(1)
	}

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	logFile, err := os.Create(filepath.Join(*outputDir, "optimize_log.csv"))
	if err != nil {
		slog.Error("failed to create log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	headerWritten := false
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			t := params.Thresholds(raw)
			bands := evaluator.LastBands()
			rec := []EvalRecord{{
				Eval:           evalCount,
				Fitness:        fitness,
				Obstacle:       t.Obstacle,
				Energy:         t.Energy,
				Mineral:        t.Mineral,
				ScientificSite: t.ScientificSite,
				ObstacleFrac:   bands[systems.CellObstacle],
				ResourceFrac:   bands[systems.CellEnergy] + bands[systems.CellMineral] + bands[systems.CellScientificSite],
			}}
			if !headerWritten {
				err = gocsv.Marshal(rec, logFile)
				headerWritten = true
			} else {
				err = gocsv.MarshalWithoutHeaders(rec, logFile)
			}
			if err != nil {
				slog.Error("failed to write eval log", "error", err)
			}

			if evalCount%25 == 0 {
				slog.Info("progress",
					"eval", evalCount,
					"max_evals", *maxEvals,
					"fitness", fitness,
					"best", bestFitness,
					"elapsed", formatDuration(time.Since(startTime)),
				)
			}
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	slog.Info("starting CMA-ES optimization",
		"params", dim,
		"population", popSize,
		"max_evals", *maxEvals,
		"seeds", *seeds,
	)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		slog.Error("no evaluations completed")
		os.Exit(1)
	}

	best := params.Thresholds(bestParams)
	slog.Info("optimization complete",
		"evals", evalCount,
		"duration", formatDuration(time.Since(startTime)),
		"fitness", bestFitness,
		"obstacle", best.Obstacle,
		"energy", best.Energy,
		"mineral", best.Mineral,
		"scientific_site", best.ScientificSite,
	)

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to reload config", "error", err)
		os.Exit(1)
	}
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		slog.Error("failed to write best config", "error", err)
		os.Exit(1)
	}
	slog.Info("best config saved", "path", configOutPath)
}
