// Package telemetry provides collection tracking, windowed stats and CSV output.
package telemetry

import "github.com/pthm-cable/swarm/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventCollection EventType = iota
	EventMiss
	EventMove
)

func (t EventType) String() string {
	switch t {
	case EventCollection:
		return "collection"
	case EventMiss:
		return "miss"
	case EventMove:
		return "move"
	default:
		return "unknown"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type    EventType
	Tick    int32
	RobotID int

	// Optional fields depending on event type
	Kind     components.ResourceKind // collection only
	Position components.Position     // collection and miss
	Moved    int                     // move only
	Parked   int                     // move only
}

// NewCollectionEvent creates an event for a resource picked up by a robot.
func NewCollectionEvent(tick int32, robotID int, kind components.ResourceKind, pos components.Position) Event {
	return Event{
		Type:     EventCollection,
		Tick:     tick,
		RobotID:  robotID,
		Kind:     kind,
		Position: pos,
	}
}

// NewMissEvent creates an event for a collector that found nothing.
func NewMissEvent(tick int32, robotID int, pos components.Position) Event {
	return Event{
		Type:     EventMiss,
		Tick:     tick,
		RobotID:  robotID,
		Position: pos,
	}
}

// NewMoveEvent creates an event for one movement tick.
func NewMoveEvent(tick int32, moved, parked int) Event {
	return Event{
		Type:   EventMove,
		Tick:   tick,
		Moved:  moved,
		Parked: parked,
	}
}
