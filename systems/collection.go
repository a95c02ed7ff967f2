package systems

import (
	"log/slog"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/world"
)

// CollectionEvent reports one resource picked up by a collector.
type CollectionEvent struct {
	RobotID    int
	RobotName  string
	ResourceID uint32
	Kind       components.ResourceKind
	Position   components.Position
}

// Miss reports a collector that found nothing on its cell.
type Miss struct {
	RobotID   int
	RobotName string
	Position  components.Position
}

// Report is the outcome of one Resolve call.
type Report struct {
	Collected []CollectionEvent
	Misses    []Miss
}

// CollectionResolver removes resources that share a cell with a collector.
type CollectionResolver struct{}

// Resolve checks collectors in ascending robot id. Every resource on a
// collector's cell is removed before the next collector is checked, so when
// two collectors share a cell the lower id collects.
func (CollectionResolver) Resolve(store *world.Store) Report {
	var report Report

	for _, r := range store.Robots() {
		if r.Robot.Kind != components.RobotCollector {
			continue
		}

		refs := store.ResourcesAt(r.Position)
		if len(refs) == 0 {
			report.Misses = append(report.Misses, Miss{
				RobotID:   r.Robot.ID,
				RobotName: r.Robot.Name,
				Position:  r.Position,
			})
			continue
		}

		for _, ref := range refs {
			if err := store.Remove(ref.ID); err != nil {
				slog.Error("collected resource missing from store",
					"robot", r.Robot.Name,
					"resource", ref.ID,
					"pos", ref.Position.String(),
					"error", err,
				)
				continue
			}
			report.Collected = append(report.Collected, CollectionEvent{
				RobotID:    r.Robot.ID,
				RobotName:  r.Robot.Name,
				ResourceID: ref.ID,
				Kind:       ref.Kind,
				Position:   ref.Position,
			})
		}
	}

	return report
}
