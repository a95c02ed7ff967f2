package systems

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/components"
)

func TestResolveCollectsOnce(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	p := components.Position{X: 3, Y: 3}
	spawnRobot(t, s, 1, p) // collector
	resID, err := s.SpawnResource(components.ResourceEnergy, p)
	require.NoError(t, err)

	var resolver CollectionResolver
	report := resolver.Resolve(s)
	require.Len(t, report.Collected, 1)
	ev := report.Collected[0]
	assert.Equal(t, components.ResourceEnergy, ev.Kind)
	assert.Equal(t, p, ev.Position)
	assert.Equal(t, 1, ev.RobotID)
	assert.Equal(t, "Collector1", ev.RobotName)
	assert.Equal(t, resID, ev.ResourceID)
	assert.Empty(t, report.Misses)
	assert.False(t, s.Has(resID))

	report = resolver.Resolve(s)
	assert.Empty(t, report.Collected)
	require.Len(t, report.Misses, 1)
	assert.Equal(t, p, report.Misses[0].Position)
}

func TestResolveCollectsEveryResourceOnCell(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	p := components.Position{X: 0, Y: 4}
	spawnRobot(t, s, 4, p) // collector
	_, _ = s.SpawnResource(components.ResourceMineral, p)
	_, _ = s.SpawnResource(components.ResourceScientificSite, p)
	_, _ = s.SpawnObstacle(p)

	report := CollectionResolver{}.Resolve(s)
	require.Len(t, report.Collected, 2)
	assert.Equal(t, components.ResourceMineral, report.Collected[0].Kind)
	assert.Equal(t, components.ResourceScientificSite, report.Collected[1].Kind)

	// Obstacles are never collected
	assert.Equal(t, 1, s.Count(components.KindObstacle))
	assert.Equal(t, 0, s.Count(components.KindResource))
}

func TestResolveNonCollectorsNeverCollect(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	p := components.Position{X: 2, Y: 2}
	spawnRobot(t, s, 3, p) // explorer
	spawnRobot(t, s, 2, p) // visitor
	resID, err := s.SpawnResource(components.ResourceMineral, p)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		report := CollectionResolver{}.Resolve(s)
		assert.Empty(t, report.Collected)
		assert.Empty(t, report.Misses)
	}
	assert.True(t, s.Has(resID))
}

func TestResolveLowestRobotIDWins(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	p := components.Position{X: 1, Y: 1}
	// Spawn the higher id first so store order does not decide
	spawnRobot(t, s, 4, p)
	spawnRobot(t, s, 1, p)
	_, err := s.SpawnResource(components.ResourceEnergy, p)
	require.NoError(t, err)

	report := CollectionResolver{}.Resolve(s)
	require.Len(t, report.Collected, 1)
	assert.Equal(t, 1, report.Collected[0].RobotID)
	require.Len(t, report.Misses, 1)
	assert.Equal(t, 4, report.Misses[0].RobotID)
}

func TestResolveEmptyCellIsMiss(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	spawnRobot(t, s, 1, components.Position{X: 0, Y: 0})
	_, _ = s.SpawnResource(components.ResourceEnergy, components.Position{X: 1, Y: 0})

	report := CollectionResolver{}.Resolve(s)
	assert.Empty(t, report.Collected)
	require.Len(t, report.Misses, 1)
	assert.Equal(t, "Collector1", report.Misses[0].RobotName)
	assert.Equal(t, 1, s.Count(components.KindResource))
}

func TestMoveThenCollect(t *testing.T) {
	s := newSchedulerStore(t, 5, 5)
	spawnRobot(t, s, 1, components.Position{X: 0, Y: 0})
	_, _ = s.SpawnResource(components.ResourceEnergy, components.Position{X: 1, Y: 1})
	sched := NewRobotScheduler(1.0, ParkAtCenter)
	var resolver CollectionResolver

	assert.Empty(t, resolver.Resolve(s).Collected)
	require.True(t, sched.Tick(1.0, s).Fired)
	report := resolver.Resolve(s)
	require.Len(t, report.Collected, 1)
	assert.Equal(t, components.Position{X: 1, Y: 1}, report.Collected[0].Position)
}

func TestResolveSharedCellLogsNoRemovalErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	s := newSchedulerStore(t, 5, 5)
	p := components.Position{X: 2, Y: 2}
	spawnRobot(t, s, 1, p) // collector
	spawnRobot(t, s, 4, p) // collector
	for _, k := range components.ResourceKinds {
		_, err := s.SpawnResource(k, p)
		require.NoError(t, err)
	}

	var resolver CollectionResolver
	report := resolver.Resolve(s)
	assert.Len(t, report.Collected, len(components.ResourceKinds))
	require.Len(t, report.Misses, 1)
	assert.Equal(t, 4, report.Misses[0].RobotID)
	assert.Empty(t, s.ResourcesAt(p))
	assert.NotContains(t, buf.String(), `"level":"ERROR"`)
}
