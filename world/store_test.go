package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/components"
)

func newTestStore(t *testing.T, w, h int) *Store {
	t.Helper()
	g, err := NewGridMap(w, h)
	require.NoError(t, err)
	return NewStore(g)
}

func TestStoreIDsAreUniqueAndMonotonic(t *testing.T) {
	s := newTestStore(t, 4, 4)

	var last uint32
	for i := 0; i < 10; i++ {
		id, err := s.SpawnObstacle(components.Position{X: i % 4, Y: i / 4})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	// Removing does not free the id for reuse
	require.NoError(t, s.Remove(last))
	id, err := s.SpawnResource(components.ResourceEnergy, components.Position{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Greater(t, id, last)
}

func TestStoreObstacleCarriesIdentity(t *testing.T) {
	s := newTestStore(t, 4, 4)
	id, err := s.SpawnObstacle(components.Position{X: 2, Y: 3})
	require.NoError(t, err)

	e, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, components.KindObstacle, e.Kind)
	assert.Equal(t, components.Position{X: 2, Y: 3}, e.Position)
}

func TestStoreRejectsOutOfBounds(t *testing.T) {
	s := newTestStore(t, 4, 4)

	_, err := s.SpawnObstacle(components.Position{X: 4, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.SpawnRobot(components.NewRobot(1, components.RobotCollector, 100, 1), components.Position{X: -1, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, s.Len())
}

func TestStoreMultipleEntitiesPerCell(t *testing.T) {
	s := newTestStore(t, 4, 4)
	p := components.Position{X: 1, Y: 2}

	obsID, err := s.SpawnObstacle(p)
	require.NoError(t, err)
	resID, err := s.SpawnResource(components.ResourceMineral, p)
	require.NoError(t, err)
	baseID, err := s.SpawnBase(p)
	require.NoError(t, err)
	robotID, err := s.SpawnRobot(components.NewRobot(1, components.RobotCollector, 100, 1), p)
	require.NoError(t, err)

	entries := s.At(p)
	require.Len(t, entries, 4)
	assert.Equal(t, obsID, entries[0].ID)
	assert.Equal(t, resID, entries[1].ID)
	assert.Equal(t, components.ResourceMineral, entries[1].Resource)
	assert.Equal(t, baseID, entries[2].ID)
	assert.Equal(t, robotID, entries[3].ID)
	assert.Equal(t, "Collector1", entries[3].Robot.Name)

	assert.Empty(t, s.At(components.Position{X: 0, Y: 0}))
}

func TestStoreSingleBase(t *testing.T) {
	s := newTestStore(t, 4, 4)

	_, ok := s.Base()
	assert.False(t, ok)

	_, err := s.SpawnBase(components.Position{X: 3, Y: 1})
	require.NoError(t, err)
	_, err = s.SpawnBase(components.Position{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrBaseExists)

	pos, ok := s.Base()
	require.True(t, ok)
	assert.Equal(t, components.Position{X: 3, Y: 1}, pos)
	assert.Equal(t, 1, s.Count(components.KindBase))
}

func TestStoreRemoveResource(t *testing.T) {
	s := newTestStore(t, 4, 4)
	p := components.Position{X: 3, Y: 3}

	a, err := s.SpawnResource(components.ResourceEnergy, p)
	require.NoError(t, err)
	b, err := s.SpawnResource(components.ResourceMineral, p)
	require.NoError(t, err)

	require.Len(t, s.ResourcesAt(p), 2)
	require.NoError(t, s.Remove(a))

	refs := s.ResourcesAt(p)
	require.Len(t, refs, 1)
	assert.Equal(t, b, refs[0].ID)
	assert.False(t, s.Has(a))
	assert.True(t, s.Has(b))

	assert.ErrorIs(t, s.Remove(a), ErrNotFound)
	assert.ErrorIs(t, s.Remove(9999), ErrNotFound)
}

func TestStoreRobotsSortedByRobotID(t *testing.T) {
	s := newTestStore(t, 8, 8)
	for _, id := range []int{4, 1, 5, 3, 2} {
		_, err := s.SpawnRobot(components.NewRobot(id, components.RobotKindForID(id), 100, 1), components.Position{X: id, Y: id})
		require.NoError(t, err)
	}

	robots := s.Robots()
	require.Len(t, robots, 5)
	for i, r := range robots {
		assert.Equal(t, i+1, r.Robot.ID)
		assert.Equal(t, components.Position{X: i + 1, Y: i + 1}, r.Position)
	}
}

func TestStoreUpdateRobotsMutatesPositions(t *testing.T) {
	s := newTestStore(t, 8, 8)
	id, err := s.SpawnRobot(components.NewRobot(1, components.RobotExplorer, 100, 1), components.Position{X: 1, Y: 1})
	require.NoError(t, err)

	s.UpdateRobots(func(_ *components.Robot, pos *components.Position) {
		pos.X++
	})

	e, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, components.Position{X: 2, Y: 1}, e.Position)

	require.NoError(t, s.SetRobotPosition(id, components.Position{X: 7, Y: 7}))
	e, _ = s.Get(id)
	assert.Equal(t, components.Position{X: 7, Y: 7}, e.Position)
	assert.ErrorIs(t, s.SetRobotPosition(id, components.Position{X: 8, Y: 0}), ErrOutOfBounds)
}

func TestStoreCounts(t *testing.T) {
	s := newTestStore(t, 4, 4)
	_, _ = s.SpawnObstacle(components.Position{X: 0, Y: 0})
	_, _ = s.SpawnResource(components.ResourceEnergy, components.Position{X: 1, Y: 0})
	_, _ = s.SpawnResource(components.ResourceEnergy, components.Position{X: 2, Y: 0})
	_, _ = s.SpawnResource(components.ResourceScientificSite, components.Position{X: 3, Y: 0})

	assert.Equal(t, 1, s.Count(components.KindObstacle))
	assert.Equal(t, 3, s.Count(components.KindResource))
	assert.Equal(t, 4, s.Len())

	counts := s.CountResources()
	assert.Equal(t, 2, counts[components.ResourceEnergy])
	assert.Equal(t, 0, counts[components.ResourceMineral])
	assert.Equal(t, 1, counts[components.ResourceScientificSite])

	seen := 0
	s.Each(func(Entry) { seen++ })
	assert.Equal(t, 4, seen)
}
