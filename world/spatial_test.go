package world

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/components"
)

func TestCellIndexInsertRemove(t *testing.T) {
	g, err := NewGridMap(3, 3)
	require.NoError(t, err)

	w := ecs.NewWorld()
	mapper := ecs.NewMap[components.Position](w)
	p := components.Position{X: 1, Y: 2}
	a := mapper.NewEntity(&p)
	b := mapper.NewEntity(&p)
	c := mapper.NewEntity(&p)

	idx := NewCellIndex(g)
	idx.Insert(a, p)
	idx.Insert(b, p)
	idx.Insert(c, p)
	idx.Insert(a, components.Position{X: 5, Y: 5}) // ignored

	assert.Equal(t, []ecs.Entity{a, b, c}, idx.At(p))
	assert.True(t, idx.Remove(b, p))
	assert.False(t, idx.Remove(b, p))
	assert.Equal(t, []ecs.Entity{a, c}, idx.At(p))
	assert.Nil(t, idx.At(components.Position{X: -1, Y: 0}))

	idx.Clear()
	assert.Empty(t, idx.At(p))
}
