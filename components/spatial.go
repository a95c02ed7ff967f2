package components

import "fmt"

// Position is an entity's grid cell.
type Position struct {
	X int `inspect:"label"`
	Y int `inspect:"label"`
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
