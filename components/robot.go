package components

import "fmt"

// RobotKind is the role of a robot.
type RobotKind uint8

const (
	RobotExplorer RobotKind = iota
	RobotCollector
	RobotVisitor
)

// Name returns the capitalized role name used as the robot name prefix.
func (k RobotKind) Name() string {
	switch k {
	case RobotExplorer:
		return "Explorer"
	case RobotCollector:
		return "Collector"
	case RobotVisitor:
		return "Visitor"
	default:
		return "Robot"
	}
}

func (k RobotKind) String() string {
	switch k {
	case RobotExplorer:
		return "explorer"
	case RobotCollector:
		return "collector"
	case RobotVisitor:
		return "visitor"
	default:
		return "unknown"
	}
}

// RobotKindForID maps a robot number to its role: 0 explorer, 1 collector,
// 2 visitor (mod 3).
func RobotKindForID(id int) RobotKind {
	switch id % 3 {
	case 0:
		return RobotExplorer
	case 1:
		return RobotCollector
	default:
		return RobotVisitor
	}
}

// Robot holds the attributes of an autonomous robot.
// Speed is carried for display; movement always advances one cell.
type Robot struct {
	ID        int       `inspect:"label"`
	Name      string    `inspect:"label"`
	MaxHealth int       `inspect:"bar,max:100"`
	Kind      RobotKind `inspect:"label"`
	Speed     int       `inspect:"label"`
}

// NewRobot builds a robot with its kind-prefixed name.
func NewRobot(id int, kind RobotKind, maxHealth, speed int) Robot {
	return Robot{
		ID:        id,
		Name:      fmt.Sprintf("%s%d", kind.Name(), id),
		MaxHealth: maxHealth,
		Kind:      kind,
		Speed:     speed,
	}
}
