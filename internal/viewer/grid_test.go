package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinobuilder/internal/terrain"
	"casinobuilder/internal/world"
)

func TestGridCellAt(t *testing.T) {
	bounds, err := terrain.NewTerrainBounds(1)
	require.NoError(t, err)
	g := newGrid(bounds, 10)

	pw, ph := g.pixelSize()
	assert.Equal(t, terrain.ChunkSize*10, pw)
	assert.Equal(t, terrain.ChunkSize*10, ph)

	g = g.centered(0, 0, pw, ph, 0, 0)
	c, ok := g.cellAt(0, 0, 2)
	require.True(t, ok)
	assert.Equal(t, world.CellCoord{X: 0, Y: 2, Z: 0}, c)

	c, ok = g.cellAt(35, 19, 0)
	require.True(t, ok)
	assert.Equal(t, world.CellCoord{X: 3, Z: 1}, c)

	_, ok = g.cellAt(-1, 5, 0)
	assert.False(t, ok)
	_, ok = g.cellAt(pw, 5, 0)
	assert.False(t, ok)
}

func TestGridNegativeChunks(t *testing.T) {
	bounds, err := terrain.NewTerrainBounds(3)
	require.NoError(t, err)
	g := newGrid(bounds, 4).centered(100, 50, 0, 0, 0, 0)

	// The top-left square is the first tile of chunk (-1, -1).
	c, ok := g.cellAt(g.originX, g.originY, 0)
	require.True(t, ok)
	assert.Equal(t, world.CellCoord{X: -terrain.ChunkSize, Z: -terrain.ChunkSize}, c)

	x, y := g.screenPos(c.X, c.Z)
	assert.Equal(t, g.originX, x)
	assert.Equal(t, g.originY, y)

	x, y = g.screenPos(0, 0)
	back, ok := g.cellAt(x+1, y+3, 1)
	require.True(t, ok)
	assert.Equal(t, world.CellCoord{X: 0, Y: 1, Z: 0}, back)
}

func TestGridPan(t *testing.T) {
	bounds, err := terrain.NewTerrainBounds(1)
	require.NoError(t, err)
	g := newGrid(bounds, 8)
	a := g.centered(0, 0, 400, 400, 0, 0)
	b := g.centered(0, 0, 400, 400, 16, -8)
	assert.Equal(t, a.originX+16, b.originX)
	assert.Equal(t, a.originY-8, b.originY)

	lx, ly := a.layerPos(2, 3)
	assert.Equal(t, 16, lx)
	assert.Equal(t, 24, ly)
}
