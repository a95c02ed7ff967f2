// Package world holds the authoritative simulation state: the grid and the
// entity store backed by an ark ECS world.
package world

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/swarm/components"
)

var (
	// ErrInvalidDimensions is returned when a grid would have a non-positive side.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// GridMap describes the rectangular cell grid. Its origin is always (0,0).
type GridMap struct {
	width  int
	height int
}

// NewGridMap creates a grid of width x height cells.
func NewGridMap(width, height int) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &GridMap{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g *GridMap) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridMap) Height() int { return g.height }

// Origin returns the grid origin.
func (g *GridMap) Origin() components.Position { return components.Position{} }

// Cells returns the total number of cells.
func (g *GridMap) Cells() int { return g.width * g.height }

// Center returns the geometric center cell using integer division.
func (g *GridMap) Center() components.Position {
	return components.Position{X: g.width / 2, Y: g.height / 2}
}

// Contains reports whether p lies inside the grid.
func (g *GridMap) Contains(p components.Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Wrap maps any position onto the grid with toroidal wraparound.
func (g *GridMap) Wrap(p components.Position) components.Position {
	return components.Position{X: mod(p.X, g.width), Y: mod(p.Y, g.height)}
}

// index returns the row-major cell index of an in-bounds position.
func (g *GridMap) index(p components.Position) int {
	return p.Y*g.width + p.X
}

// mod returns positive modulo (Go's % can return negative).
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
