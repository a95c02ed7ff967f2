package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/world"
)

// BandCounts tallies generated cells per class.
type BandCounts [NumCellClasses]int

// Generation is the initial simulation state produced by a Generator.
type Generation struct {
	Grid  *world.GridMap
	Store *world.Store
	Base  components.Position

	// Bands counts classified cells; Samples holds every cell's noise value
	// in row-major order.
	Bands   BandCounts
	Samples []float64
}

// Generator builds a grid and its entities from a noise field.
type Generator struct {
	field      Field
	thresholds Thresholds
	rng        *rand.Rand
}

// NewGenerator creates a generator. The seed drives base placement; the
// field carries its own seed.
func NewGenerator(field Field, thresholds Thresholds, seed int64) *Generator {
	return &Generator{
		field:      field,
		thresholds: thresholds,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Rand exposes the generator's random source for follow-up placement such
// as robot spawning.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Generate classifies every cell of a width x height grid, spawns the
// obstacle or resource for each non-empty cell, then drops the base on a
// uniformly random cell regardless of what is already there.
func (g *Generator) Generate(width, height int) (*Generation, error) {
	grid, err := world.NewGridMap(width, height)
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}
	store := world.NewStore(grid)

	gen := &Generation{
		Grid:    grid,
		Store:   store,
		Samples: make([]float64, 0, grid.Cells()),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := g.field.ValueAt(x, y)
			gen.Samples = append(gen.Samples, n)

			class := g.thresholds.Classify(n)
			gen.Bands[class]++

			pos := components.Position{X: x, Y: y}
			if class == CellObstacle {
				if _, err := store.SpawnObstacle(pos); err != nil {
					return nil, fmt.Errorf("spawning obstacle: %w", err)
				}
			} else if kind, ok := class.Resource(); ok {
				if _, err := store.SpawnResource(kind, pos); err != nil {
					return nil, fmt.Errorf("spawning resource: %w", err)
				}
			}
		}
	}

	gen.Base = RandomCell(g.rng, grid)
	if _, err := store.SpawnBase(gen.Base); err != nil {
		return nil, fmt.Errorf("spawning base: %w", err)
	}

	return gen, nil
}

// RandomCell returns a uniformly random cell of the grid.
func RandomCell(rng *rand.Rand, grid *world.GridMap) components.Position {
	return components.Position{X: rng.Intn(grid.Width()), Y: rng.Intn(grid.Height())}
}
