package viewer

import (
	"casinobuilder/internal/terrain"
	"casinobuilder/internal/world"
)

// grid maps screen pixels to cells. Terrain tile (x, y) and map cell
// (X: x, Z: y) share one square on screen; the level comes from the tool.
type grid struct {
	originX, originY int
	tile             int
	minX, minY       int
	cols, rows       int
}

func newGrid(bounds terrain.TerrainBounds, tilePixels int) grid {
	lo := bounds.Min()
	n := bounds.Width() * terrain.ChunkSize
	if tilePixels < 1 {
		tilePixels = 1
	}
	return grid{
		tile: tilePixels,
		minX: lo.X * terrain.ChunkSize,
		minY: lo.Y * terrain.ChunkSize,
		cols: n,
		rows: n,
	}
}

func (g grid) pixelSize() (int, int) {
	return g.cols * g.tile, g.rows * g.tile
}

// centered places the grid in the middle of a panel, shifted by the pan offset.
func (g grid) centered(x, y, w, h, panX, panY int) grid {
	pw, ph := g.pixelSize()
	g.originX = x + (w-pw)/2 + panX
	g.originY = y + (h-ph)/2 + panY
	return g
}

// cellAt returns the cell under a screen pixel on the given level.
func (g grid) cellAt(px, py, level int) (world.CellCoord, bool) {
	if px < g.originX || py < g.originY {
		return world.CellCoord{}, false
	}
	col := (px - g.originX) / g.tile
	row := (py - g.originY) / g.tile
	if col >= g.cols || row >= g.rows {
		return world.CellCoord{}, false
	}
	return world.CellCoord{X: g.minX + col, Y: level, Z: g.minY + row}, true
}

// screenPos is the top-left pixel of the square for tile (x, y).
func (g grid) screenPos(x, y int) (int, int) {
	return g.originX + (x-g.minX)*g.tile, g.originY + (y-g.minY)*g.tile
}

// layerPos is screenPos relative to the grid origin.
func (g grid) layerPos(x, y int) (int, int) {
	return (x - g.minX) * g.tile, (y - g.minY) * g.tile
}
