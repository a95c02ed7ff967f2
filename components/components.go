// Package components defines ECS components for the simulation.
package components

// EntityKind identifies which variant an entity is.
type EntityKind uint8

const (
	KindObstacle EntityKind = iota
	KindResource
	KindBase
	KindRobot
)

func (k EntityKind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindResource:
		return "resource"
	case KindBase:
		return "base"
	case KindRobot:
		return "robot"
	default:
		return "unknown"
	}
}

// Identity is attached to every entity. ID is assigned by the store from a
// monotonic counter and is never reused.
type Identity struct {
	ID   uint32     `inspect:"label"`
	Kind EntityKind `inspect:"label"`
}

// Obstacle marks an impassable-looking cell. Robots ignore it.
type Obstacle struct {
	ID uint32 `inspect:"label"`
}

// ResourceKind is the type of a collectable resource.
type ResourceKind uint8

const (
	ResourceEnergy ResourceKind = iota
	ResourceMineral
	ResourceScientificSite
)

// ResourceKinds lists every resource kind in threshold order.
var ResourceKinds = [...]ResourceKind{ResourceEnergy, ResourceMineral, ResourceScientificSite}

func (k ResourceKind) String() string {
	switch k {
	case ResourceEnergy:
		return "energy"
	case ResourceMineral:
		return "mineral"
	case ResourceScientificSite:
		return "scientific_site"
	default:
		return "unknown"
	}
}

// Resource is a collectable item sitting on a cell.
type Resource struct {
	Kind ResourceKind `inspect:"label"`
}
