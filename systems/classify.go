// Package systems provides the simulation rules: map generation, robot
// movement and resource collection.
package systems

import (
	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/config"
)

// CellClass is the outcome of classifying one cell's noise value.
type CellClass uint8

const (
	CellEmpty CellClass = iota
	CellObstacle
	CellEnergy
	CellMineral
	CellScientificSite

	NumCellClasses
)

func (c CellClass) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellObstacle:
		return "obstacle"
	case CellEnergy:
		return "energy"
	case CellMineral:
		return "mineral"
	case CellScientificSite:
		return "scientific_site"
	default:
		return "unknown"
	}
}

// Resource returns the resource kind spawned for this class, if any.
func (c CellClass) Resource() (components.ResourceKind, bool) {
	switch c {
	case CellEnergy:
		return components.ResourceEnergy, true
	case CellMineral:
		return components.ResourceMineral, true
	case CellScientificSite:
		return components.ResourceScientificSite, true
	default:
		return 0, false
	}
}

// Thresholds are the exclusive lower bounds of each band. They must descend
// from Obstacle to ScientificSite.
type Thresholds struct {
	Obstacle       float64
	Energy         float64
	Mineral        float64
	ScientificSite float64
}

// DefaultThresholds returns the stock classification bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Obstacle:       0.8,
		Energy:         0.75,
		Mineral:        0.72,
		ScientificSite: 0.70,
	}
}

// ThresholdsFromConfig converts the config section.
func ThresholdsFromConfig(c config.ClassificationConfig) Thresholds {
	return Thresholds{
		Obstacle:       c.Obstacle,
		Energy:         c.Energy,
		Mineral:        c.Mineral,
		ScientificSite: c.ScientificSite,
	}
}

// Classify maps a noise value to exactly one class. Bands are checked top to
// bottom and the first strict match wins, so an obstacle pre-empts resources.
func (t Thresholds) Classify(n float64) CellClass {
	switch {
	case n > t.Obstacle:
		return CellObstacle
	case n > t.Energy:
		return CellEnergy
	case n > t.Mineral:
		return CellMineral
	case n > t.ScientificSite:
		return CellScientificSite
	default:
		return CellEmpty
	}
}
