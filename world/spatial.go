package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/components"
)

// CellIndex buckets entities by grid cell for O(1) position lookups.
// Several entities may share a cell.
type CellIndex struct {
	grid  *GridMap
	cells [][]ecs.Entity
}

// NewCellIndex creates an empty index covering the grid.
func NewCellIndex(grid *GridMap) *CellIndex {
	return &CellIndex{
		grid:  grid,
		cells: make([][]ecs.Entity, grid.Cells()),
	}
}

// Insert adds an entity at p. Out-of-bounds positions are ignored.
func (c *CellIndex) Insert(e ecs.Entity, p components.Position) {
	if !c.grid.Contains(p) {
		return
	}
	idx := c.grid.index(p)
	c.cells[idx] = append(c.cells[idx], e)
}

// Remove drops an entity from the bucket at p, keeping the order of the rest.
func (c *CellIndex) Remove(e ecs.Entity, p components.Position) bool {
	if !c.grid.Contains(p) {
		return false
	}
	idx := c.grid.index(p)
	bucket := c.cells[idx]
	for i, other := range bucket {
		if other == e {
			c.cells[idx] = append(bucket[:i], bucket[i+1:]...)
			return true
		}
	}
	return false
}

// At returns the entities at p in insertion order. The slice is owned by the
// index and must not be modified or held across mutations.
func (c *CellIndex) At(p components.Position) []ecs.Entity {
	if !c.grid.Contains(p) {
		return nil
	}
	return c.cells[c.grid.index(p)]
}

// Clear removes all entities from the index.
func (c *CellIndex) Clear() {
	for i := range c.cells {
		c.cells[i] = c.cells[i][:0]
	}
}
