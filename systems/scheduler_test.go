package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/world"
)

func newSchedulerStore(t *testing.T, w, h int) *world.Store {
	t.Helper()
	g, err := world.NewGridMap(w, h)
	require.NoError(t, err)
	return world.NewStore(g)
}

func spawnRobot(t *testing.T, s *world.Store, id int, p components.Position) uint32 {
	t.Helper()
	eid, err := s.SpawnRobot(components.NewRobot(id, components.RobotKindForID(id), 100, 1), p)
	require.NoError(t, err)
	return eid
}

func robotPos(t *testing.T, s *world.Store, id uint32) components.Position {
	t.Helper()
	e, ok := s.Get(id)
	require.True(t, ok)
	return e.Position
}

func TestTimerFiresOncePerPeriod(t *testing.T) {
	timer := NewTimer(1.0)

	assert.False(t, timer.Tick(0.4))
	assert.False(t, timer.Tick(0.4))
	assert.True(t, timer.Tick(0.4))
	assert.InDelta(t, 0.2, timer.Elapsed(), 1e-9)
	assert.False(t, timer.Tick(0.5))
	assert.True(t, timer.Tick(0.4))
	assert.InDelta(t, 0.1, timer.Elapsed(), 1e-9)

	// A large delta fires once and keeps the remainder
	assert.True(t, timer.Tick(2.5))
	assert.InDelta(t, 0.6, timer.Elapsed(), 1e-9)
	assert.Equal(t, 3, timer.Fired())

	timer.Reset()
	assert.Equal(t, 0.0, timer.Elapsed())
	assert.False(t, timer.Tick(-5))
}

func TestTimerTenthsAddUpToPeriod(t *testing.T) {
	timer := NewTimer(1.0)

	fires := 0
	for frame := 1; frame <= 100; frame++ {
		if timer.Tick(0.1) {
			fires++
			assert.Zero(t, frame%10, "fired on frame %d", frame)
		}
	}
	assert.Equal(t, 10, fires)
	assert.Zero(t, timer.Elapsed())
}

func TestSchedulerMovesAfterTenFrames(t *testing.T) {
	s := newSchedulerStore(t, 10, 10)
	id := spawnRobot(t, s, 1, components.Position{X: 2, Y: 3})
	sched := NewRobotScheduler(1.0, ParkAtCenter)

	for i := 0; i < 9; i++ {
		assert.False(t, sched.Tick(0.1, s).Fired)
	}
	res := sched.Tick(0.1, s)
	require.True(t, res.Fired)
	assert.Equal(t, components.Position{X: 3, Y: 4}, robotPos(t, s, id))
}

func TestSchedulerNoOpWithinPeriod(t *testing.T) {
	s := newSchedulerStore(t, 10, 10)
	id := spawnRobot(t, s, 1, components.Position{X: 2, Y: 3})
	sched := NewRobotScheduler(1.0, ParkAtCenter)

	for i := 0; i < 9; i++ {
		res := sched.Tick(0.1, s)
		assert.False(t, res.Fired)
	}
	assert.Equal(t, components.Position{X: 2, Y: 3}, robotPos(t, s, id))

	res := sched.Tick(0.2, s)
	assert.True(t, res.Fired)
	assert.Equal(t, 1, res.Moved)
	assert.Equal(t, components.Position{X: 3, Y: 4}, robotPos(t, s, id))
}

func TestSchedulerWrapsAround(t *testing.T) {
	s := newSchedulerStore(t, 7, 5)
	id := spawnRobot(t, s, 1, components.Position{X: 6, Y: 4})
	sched := NewRobotScheduler(1.0, ParkAtCenter)

	res := sched.Tick(1.0, s)
	require.True(t, res.Fired)
	assert.Equal(t, components.Position{X: 0, Y: 0}, robotPos(t, s, id))
}

func TestSchedulerWrapsAxesIndependently(t *testing.T) {
	g, err := world.NewGridMap(4, 6)
	require.NoError(t, err)
	assert.Equal(t, components.Position{X: 0, Y: 4}, NextPosition(components.Position{X: 3, Y: 3}, g))
	assert.Equal(t, components.Position{X: 2, Y: 0}, NextPosition(components.Position{X: 1, Y: 5}, g))
}

func TestSchedulerParkedAtCenterNeverMoves(t *testing.T) {
	s := newSchedulerStore(t, 9, 6)
	parked := spawnRobot(t, s, 1, components.Position{X: 4, Y: 3})
	mover := spawnRobot(t, s, 2, components.Position{X: 0, Y: 0})
	sched := NewRobotScheduler(1.0, ParkAtCenter)

	for i := 0; i < 20; i++ {
		res := sched.Tick(1.0, s)
		require.True(t, res.Fired)
		assert.Equal(t, components.Position{X: 4, Y: 3}, robotPos(t, s, parked))
	}
	assert.NotEqual(t, components.Position{X: 0, Y: 0}, robotPos(t, s, mover))
}

func TestSchedulerRobotReachesCenterAndStays(t *testing.T) {
	s := newSchedulerStore(t, 10, 10)
	id := spawnRobot(t, s, 1, components.Position{X: 2, Y: 2})
	sched := NewRobotScheduler(1.0, ParkAtCenter)

	for i := 0; i < 3; i++ {
		sched.Step(s)
	}
	assert.Equal(t, components.Position{X: 5, Y: 5}, robotPos(t, s, id))

	moved, parked := sched.Step(s)
	assert.Equal(t, 0, moved)
	assert.Equal(t, 1, parked)
	assert.Equal(t, components.Position{X: 5, Y: 5}, robotPos(t, s, id))
}

func TestSchedulerParkAtBase(t *testing.T) {
	s := newSchedulerStore(t, 10, 10)
	_, err := s.SpawnBase(components.Position{X: 7, Y: 1})
	require.NoError(t, err)
	atBase := spawnRobot(t, s, 1, components.Position{X: 7, Y: 1})
	atCenter := spawnRobot(t, s, 2, components.Position{X: 5, Y: 5})
	sched := NewRobotScheduler(1.0, ParkAtBase)

	moved, parked := sched.Step(s)
	assert.Equal(t, 1, moved)
	assert.Equal(t, 1, parked)
	assert.Equal(t, components.Position{X: 7, Y: 1}, robotPos(t, s, atBase))
	assert.Equal(t, components.Position{X: 6, Y: 6}, robotPos(t, s, atCenter))
}

func TestSchedulerParkAtBaseWithoutBase(t *testing.T) {
	s := newSchedulerStore(t, 10, 10)
	id := spawnRobot(t, s, 1, components.Position{X: 0, Y: 0})
	sched := NewRobotScheduler(1.0, ParkAtBase)

	moved, parked := sched.Step(s)
	assert.Equal(t, 1, moved)
	assert.Equal(t, 0, parked)
	assert.Equal(t, components.Position{X: 1, Y: 1}, robotPos(t, s, id))
}

func TestParseParkRule(t *testing.T) {
	r, err := ParseParkRule("center")
	require.NoError(t, err)
	assert.Equal(t, ParkAtCenter, r)

	r, err = ParseParkRule("base")
	require.NoError(t, err)
	assert.Equal(t, ParkAtBase, r)
	assert.Equal(t, "base", r.String())

	_, err = ParseParkRule("home")
	assert.Error(t, err)
}
