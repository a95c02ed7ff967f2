package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/systems"
)

func TestDistribution(t *testing.T) {
	values := make([]float64, 0, 1001)
	for i := 1000; i >= 0; i-- {
		values = append(values, float64(i)/1000)
	}
	mean, std, p10, p50, p90 := Distribution(values)

	assert.InDelta(t, 0.5, mean, 0.001)
	// Population std dev of a uniform grid on [0,1] is ~0.2887
	assert.InDelta(t, 0.2887, std, 0.001)
	assert.InDelta(t, 0.1, p10, 0.01)
	assert.InDelta(t, 0.5, p50, 0.01)
	assert.InDelta(t, 0.9, p90, 0.01)

	// Input must not be reordered
	assert.Equal(t, 1.0, values[0])
}

func TestDistributionConstant(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution([]float64{0.3, 0.3, 0.3})
	for name, v := range map[string]float64{"mean": mean, "p10": p10, "p50": p50, "p90": p90} {
		assert.InDelta(t, 0.3, v, 1e-12, name)
	}
	assert.LessOrEqual(t, std, 1e-12)
}

func TestDistributionEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution(nil)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, []float64{mean, std, p10, p50, p90})
}

func TestNewMapSummary(t *testing.T) {
	var bands systems.BandCounts
	bands[systems.CellObstacle] = 3
	bands[systems.CellEnergy] = 2
	bands[systems.CellMineral] = 1
	bands[systems.CellScientificSite] = 4
	bands[systems.CellEmpty] = 6

	m := NewMapSummary(9, 4, 4, bands, []float64{0.1, 0.9})
	assert.EqualValues(t, 3, m.Obstacles)
	assert.EqualValues(t, 2, m.Energy)
	assert.EqualValues(t, 1, m.Mineral)
	assert.EqualValues(t, 4, m.ScientificSites)
	assert.EqualValues(t, 6, m.Empty)
	assert.Equal(t, 7, m.Resources())
	assert.InDelta(t, 0.5, m.NoiseMean, 1e-9)
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(3, 1.0)
	pos := components.Position{X: 1, Y: 1}

	c.Record(NewMoveEvent(1, 5, 0))
	c.Record(NewCollectionEvent(1, 1, components.ResourceEnergy, pos))
	c.Record(NewCollectionEvent(1, 4, components.ResourceMineral, pos))
	c.Record(NewMissEvent(1, 1, pos))
	c.Record(NewMissEvent(2, 1, pos))
	c.Record(NewMoveEvent(2, 4, 1))

	assert.False(t, c.ShouldFlush(2), "before window end")
	assert.True(t, c.ShouldFlush(3), "at window end")

	stats := c.Flush(3, map[components.ResourceKind]int{components.ResourceEnergy: 7})
	assert.EqualValues(t, 1, stats.EnergyCollected)
	assert.EqualValues(t, 1, stats.MineralCollected)
	assert.EqualValues(t, 0, stats.ScientificCollected)
	assert.EqualValues(t, 2, stats.Misses)
	assert.EqualValues(t, 9, stats.Moves)
	assert.EqualValues(t, 1, stats.Parked)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)
	assert.EqualValues(t, 7, stats.EnergyRemaining)
	assert.InDelta(t, 3, stats.SimTimeSec, 1e-9)

	// Counters reset, totals persist
	next := c.Flush(6, nil)
	assert.Zero(t, next.Collected())
	assert.EqualValues(t, 0, next.Misses)
	assert.EqualValues(t, 3, next.WindowStartTick)
	assert.Equal(t, 1, c.TotalCollected(components.ResourceEnergy))
}
