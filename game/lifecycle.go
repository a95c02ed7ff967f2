package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/systems"
)

// spawnRobots creates robots 1..count on random cells. The kind cycles
// with the id: Explorer, Collector, Visitor.
func (g *Game) spawnRobots(count int) error {
	cfg := g.cfg
	for id := 1; id <= count; id++ {
		kind := components.RobotKindForID(id)
		robot := components.NewRobot(id, kind, cfg.Robots.MaxHealth, cfg.Robots.Speed)
		pos := systems.RandomCell(g.rng, g.grid)

		entityID, err := g.store.SpawnRobot(robot, pos)
		if err != nil {
			return fmt.Errorf("spawning robot %d: %w", id, err)
		}

		slog.Info("robot spawned",
			"robot", robot.Name,
			"entity", entityID,
			"kind", kind.String(),
			"x", pos.X,
			"y", pos.Y,
		)
	}
	return nil
}
