package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/components"
)

func TestNewGridMapRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewGridMap(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestGridMapGeometry(t *testing.T) {
	g, err := NewGridMap(50, 40)
	require.NoError(t, err)

	assert.Equal(t, 50, g.Width())
	assert.Equal(t, 40, g.Height())
	assert.Equal(t, 2000, g.Cells())
	assert.Equal(t, components.Position{X: 25, Y: 20}, g.Center())
	assert.Equal(t, components.Position{}, g.Origin())

	assert.True(t, g.Contains(components.Position{X: 0, Y: 0}))
	assert.True(t, g.Contains(components.Position{X: 49, Y: 39}))
	assert.False(t, g.Contains(components.Position{X: 50, Y: 0}))
	assert.False(t, g.Contains(components.Position{X: 0, Y: -1}))
}

func TestGridMapWrap(t *testing.T) {
	g, err := NewGridMap(4, 3)
	require.NoError(t, err)

	assert.Equal(t, components.Position{X: 0, Y: 0}, g.Wrap(components.Position{X: 4, Y: 3}))
	assert.Equal(t, components.Position{X: 3, Y: 2}, g.Wrap(components.Position{X: -1, Y: -1}))
	assert.Equal(t, components.Position{X: 1, Y: 1}, g.Wrap(components.Position{X: 9, Y: 7}))
}

func TestGridMapCenterOddSizes(t *testing.T) {
	g, err := NewGridMap(5, 7)
	require.NoError(t, err)
	assert.Equal(t, components.Position{X: 2, Y: 3}, g.Center())
}
