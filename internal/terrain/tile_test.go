package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTile(t *testing.T, x, y int) *TerrainTile {
	t.Helper()
	local, err := NewTileLocalCoord(x, y)
	require.NoError(t, err)
	return NewTerrainTile(local, NewTileWorldCoord(ChunkCoord{}, local))
}

func TestCornerHeightsIsSlope(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name    string
		heights CornerHeights
		want    bool
	}{
		{"flat", CornerHeights{1, 1, 1, 1}, false},
		{"one corner raised", CornerHeights{1, 1, 1, 1.5}, true},
		{"top differs", CornerHeights{0, 0.5, 0, 0}, true},
		{"equal infinities", CornerHeights{inf, inf, inf, inf}, false},
		{"opposite infinities", CornerHeights{inf, inf, -inf, inf}, true},
		{"all NaN", CornerHeights{nan, nan, nan, nan}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.heights.IsSlope())
		})
	}
}

func TestGenerateHeightsOnlyOnce(t *testing.T) {
	tile := newTestTile(t, 2, 3)
	assert.False(t, tile.HasHeights())

	require.NoError(t, tile.GenerateHeights(CornerHeights{0, 0.5, 0, 0}))
	assert.True(t, tile.HasHeights())
	assert.True(t, tile.IsSlope())
	assert.Equal(t, 0.5, tile.TopRight())

	err := tile.GenerateHeights(CornerHeights{1, 1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidOperation)
	assert.Equal(t, 0.5, tile.TopRight(), "heights must not change after a rejected call")
}

func TestSlopeNeighborMaskOnlyOnFlatTiles(t *testing.T) {
	flat := newTestTile(t, 0, 0)
	require.NoError(t, flat.GenerateHeights(CornerHeights{1, 1, 1, 1}))

	flat.markSlopeNeighbor(North)
	flat.markSlopeNeighbor(SouthWest)
	mask := flat.SlopeNeighborMask()
	assert.True(t, mask.Has(North))
	assert.True(t, mask.Has(SouthWest))
	assert.False(t, mask.Has(East))
	assert.Equal(t, North.Bit()|SouthWest.Bit(), mask)

	flat.clearSlopeNeighbors()
	assert.Zero(t, flat.SlopeNeighborMask())

	flat.markSlopeNeighbor(East)
	flat.markSlopeNeighbor(East)
	assert.Equal(t, East.Bit(), flat.SlopeNeighborMask())
	flat.clearSlopeNeighbors()

	sloped := newTestTile(t, 1, 0)
	require.NoError(t, sloped.GenerateHeights(CornerHeights{0, 1, 0, 1}))
	sloped.markSlopeNeighbor(North)
	assert.Zero(t, sloped.SlopeNeighborMask())
}

func TestDirectionOffsets(t *testing.T) {
	seen := map[[2]int]bool{}
	var all SlopeNeighborMask
	for _, d := range Directions {
		dx, dy := d.Offset()
		assert.False(t, dx == 0 && dy == 0, "%s has zero offset", d)
		seen[[2]int{dx, dy}] = true
		all |= d.Bit()
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, SlopeNeighborMask(0xFF), all)

	dx, dy := NorthEast.Offset()
	assert.Equal(t, 1, dx)
	assert.Equal(t, -1, dy)
}
