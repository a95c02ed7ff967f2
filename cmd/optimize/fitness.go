package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/systems"
)

// Targets are the desired fractions of cells per band.
type Targets struct {
	Obstacle       float64
	Energy         float64
	Mineral        float64
	ScientificSite float64
}

func (t Targets) fractions() [systems.NumCellClasses]float64 {
	var f [systems.NumCellClasses]float64
	f[systems.CellObstacle] = t.Obstacle
	f[systems.CellEnergy] = t.Energy
	f[systems.CellMineral] = t.Mineral
	f[systems.CellScientificSite] = t.ScientificSite
	f[systems.CellEmpty] = 1 - t.Obstacle - t.Energy - t.Mineral - t.ScientificSite
	return f
}

// FitnessEvaluator scores threshold vectors against sampled noise maps.
// Noise is sampled once per seed; each evaluation only reclassifies.
type FitnessEvaluator struct {
	params  *ParamVector
	targets [systems.NumCellClasses]float64
	samples [][]float64 // one noise map per seed

	mu          sync.Mutex
	lastBands   [systems.NumCellClasses]float64
	bestFitness float64
}

// NewFitnessEvaluator samples one noise map per seed using the base config's
// noise settings and grid size.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config, targets Targets) (*FitnessEvaluator, error) {
	fe := &FitnessEvaluator{
		params:      params,
		targets:     targets.fractions(),
		bestFitness: math.Inf(1),
	}

	for _, seed := range seeds {
		sampler, err := systems.NewSampler(baseCfg.Noise.Algorithm, seed)
		if err != nil {
			return nil, fmt.Errorf("creating sampler: %w", err)
		}
		field := systems.NewNoiseField(sampler, baseCfg.Noise.Scale)

		values := make([]float64, 0, baseCfg.Grid.Width*baseCfg.Grid.Height)
		for y := 0; y < baseCfg.Grid.Height; y++ {
			for x := 0; x < baseCfg.Grid.Width; x++ {
				values = append(values, field.ValueAt(x, y))
			}
		}
		fe.samples = append(fe.samples, values)
	}

	return fe, nil
}

// BandFractions classifies every sampled cell with the given thresholds and
// returns the mean fraction per band across seeds.
func (fe *FitnessEvaluator) BandFractions(t systems.Thresholds) [systems.NumCellClasses]float64 {
	var out [systems.NumCellClasses]float64
	for _, values := range fe.samples {
		var counts [systems.NumCellClasses]int
		for _, n := range values {
			counts[t.Classify(n)]++
		}
		for c := range counts {
			out[c] += float64(counts[c]) / float64(len(values))
		}
	}
	for c := range out {
		out[c] /= float64(len(fe.samples))
	}
	return out
}

// Evaluate returns the squared error between band fractions and targets.
// Lower is better.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	t := systems.ThresholdsFromConfig(fe.params.Thresholds(raw))
	bands := fe.BandFractions(t)

	var fitness float64
	for c := range bands {
		d := bands[c] - fe.targets[c]
		fitness += d * d
	}

	fe.mu.Lock()
	fe.lastBands = bands
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.mu.Unlock()

	return fitness
}

// LastBands returns the band fractions from the most recent evaluation.
func (fe *FitnessEvaluator) LastBands() [systems.NumCellClasses]float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastBands
}
