package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/config"
)

func TestClassifyBands(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		n    float64
		want CellClass
	}{
		{1.0, CellObstacle},
		{0.81, CellObstacle},
		{0.8, CellEnergy}, // bands are exclusive at the lower bound
		{0.76, CellEnergy},
		{0.75, CellMineral},
		{0.73, CellMineral},
		{0.72, CellScientificSite},
		{0.71, CellScientificSite},
		{0.70, CellEmpty},
		{0.5, CellEmpty},
		{0.0, CellEmpty},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.n), "Classify(%v)", tt.n)
	}
}

func TestClassifyExhaustiveAndOrdered(t *testing.T) {
	th := DefaultThresholds()
	for i := 0; i <= 1000; i++ {
		n := float64(i) / 1000
		c := th.Classify(n)
		assert.Less(t, c, NumCellClasses)

		// The chosen band is the first matching one in priority order
		switch {
		case n > th.Obstacle:
			assert.Equal(t, CellObstacle, c)
		case n > th.Energy:
			assert.Equal(t, CellEnergy, c)
		case n > th.Mineral:
			assert.Equal(t, CellMineral, c)
		case n > th.ScientificSite:
			assert.Equal(t, CellScientificSite, c)
		default:
			assert.Equal(t, CellEmpty, c)
		}
	}
}

func TestCellClassResource(t *testing.T) {
	k, ok := CellEnergy.Resource()
	assert.True(t, ok)
	assert.Equal(t, components.ResourceEnergy, k)

	k, ok = CellMineral.Resource()
	assert.True(t, ok)
	assert.Equal(t, components.ResourceMineral, k)

	k, ok = CellScientificSite.Resource()
	assert.True(t, ok)
	assert.Equal(t, components.ResourceScientificSite, k)

	_, ok = CellObstacle.Resource()
	assert.False(t, ok)
	_, ok = CellEmpty.Resource()
	assert.False(t, ok)
}

func TestThresholdsFromConfigMatchesDefaults(t *testing.T) {
	assert.Equal(t, DefaultThresholds(), ThresholdsFromConfig(config.Defaults().Classification))
}
