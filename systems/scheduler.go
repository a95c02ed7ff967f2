package systems

import (
	"fmt"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/world"
)

// ParkRule decides which cell holds a robot in place.
type ParkRule uint8

const (
	// ParkAtCenter parks robots on the grid's geometric center.
	ParkAtCenter ParkRule = iota
	// ParkAtBase parks robots on the Base entity's position.
	ParkAtBase
)

// ParseParkRule converts a config value.
func ParseParkRule(s string) (ParkRule, error) {
	switch s {
	case config.ParkAtCenter:
		return ParkAtCenter, nil
	case config.ParkAtBase:
		return ParkAtBase, nil
	default:
		return 0, fmt.Errorf("unknown park rule %q", s)
	}
}

func (r ParkRule) String() string {
	if r == ParkAtBase {
		return config.ParkAtBase
	}
	return config.ParkAtCenter
}

// TickResult summarizes one scheduler call.
type TickResult struct {
	Fired  bool
	Moved  int
	Parked int
}

// RobotScheduler advances robots one diagonal step each time its timer fires.
type RobotScheduler struct {
	timer *Timer
	rule  ParkRule
}

// NewRobotScheduler creates a scheduler firing every period seconds.
func NewRobotScheduler(period float64, rule ParkRule) *RobotScheduler {
	return &RobotScheduler{timer: NewTimer(period), rule: rule}
}

// Timer returns the movement timer.
func (s *RobotScheduler) Timer() *Timer { return s.timer }

// Rule returns the park rule in effect.
func (s *RobotScheduler) Rule() ParkRule { return s.rule }

// Tick feeds dt to the timer and moves robots when it fires.
func (s *RobotScheduler) Tick(dt float64, store *world.Store) TickResult {
	if !s.timer.Tick(dt) {
		return TickResult{}
	}
	moved, parked := s.Step(store)
	return TickResult{Fired: true, Moved: moved, Parked: parked}
}

// Step applies one movement tick immediately, bypassing the timer.
func (s *RobotScheduler) Step(store *world.Store) (moved, parked int) {
	grid := store.Grid()
	park, hasPark := s.parkCell(store)

	store.UpdateRobots(func(_ *components.Robot, pos *components.Position) {
		if hasPark && *pos == park {
			parked++
			return
		}
		*pos = NextPosition(*pos, grid)
		moved++
	})
	return moved, parked
}

func (s *RobotScheduler) parkCell(store *world.Store) (components.Position, bool) {
	if s.rule == ParkAtBase {
		return store.Base()
	}
	return store.Grid().Center(), true
}

// NextPosition moves one cell along both axes, wrapping at the edges.
func NextPosition(p components.Position, grid *world.GridMap) components.Position {
	return components.Position{
		X: (p.X + 1) % grid.Width(),
		Y: (p.Y + 1) % grid.Height(),
	}
}
