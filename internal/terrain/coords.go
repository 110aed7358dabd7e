package terrain

import (
	"fmt"
	"math"

	"casinobuilder/internal/mathutil"
)

// ChunkSize is the number of tiles along one chunk edge.
const ChunkSize = 16

// TileWorldCoord identifies a tile in the unbounded world tile lattice.
type TileWorldCoord struct {
	X, Y int
}

// ChunkCoord identifies a chunk in chunk space.
type ChunkCoord struct {
	X, Y int
}

// TileLocalCoord is a tile position inside a chunk. Both axes lie in [0, ChunkSize).
// The zero value is the valid coordinate (0, 0).
type TileLocalCoord struct {
	x, y int
}

// NewTileLocalCoord validates x and y against the chunk size.
func NewTileLocalCoord(x, y int) (TileLocalCoord, error) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize {
		return TileLocalCoord{}, fmt.Errorf("local coordinate (%d, %d) outside [0, %d): %w", x, y, ChunkSize, ErrOutOfRange)
	}
	return TileLocalCoord{x: x, y: y}, nil
}

// TileLocalCoordFromIndex is the inverse of Index.
func TileLocalCoordFromIndex(index int) (TileLocalCoord, error) {
	if index < 0 || index >= ChunkSize*ChunkSize {
		return TileLocalCoord{}, fmt.Errorf("local index %d outside [0, %d): %w", index, ChunkSize*ChunkSize, ErrOutOfRange)
	}
	return TileLocalCoord{x: index % ChunkSize, y: index / ChunkSize}, nil
}

func (c TileLocalCoord) X() int { return c.x }
func (c TileLocalCoord) Y() int { return c.y }

// Index is the row-major position of the tile inside its chunk.
func (c TileLocalCoord) Index() int {
	return c.x + c.y*ChunkSize
}

func (c TileLocalCoord) String() string {
	return fmt.Sprintf("local(%d, %d)", c.x, c.y)
}

// NewTileWorldCoord combines a chunk coordinate and a local coordinate.
func NewTileWorldCoord(chunk ChunkCoord, local TileLocalCoord) TileWorldCoord {
	return TileWorldCoord{
		X: chunk.X*ChunkSize + local.x,
		Y: chunk.Y*ChunkSize + local.y,
	}
}

// TileWorldCoordFromPosition floors a continuous world position (1 unit per tile) to its tile.
func TileWorldCoordFromPosition(x, y float64) TileWorldCoord {
	return TileWorldCoord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Chunk returns the chunk owning the tile, flooring for negative coordinates.
func (c TileWorldCoord) Chunk() ChunkCoord {
	return ChunkCoord{
		X: mathutil.FloorDiv(c.X, ChunkSize),
		Y: mathutil.FloorDiv(c.Y, ChunkSize),
	}
}

// Local returns the tile's position inside its owning chunk.
func (c TileWorldCoord) Local() TileLocalCoord {
	return TileLocalCoord{
		x: mathutil.FloorMod(c.X, ChunkSize),
		y: mathutil.FloorMod(c.Y, ChunkSize),
	}
}

// Offset returns the coordinate shifted by (dx, dy).
func (c TileWorldCoord) Offset(dx, dy int) TileWorldCoord {
	return TileWorldCoord{X: c.X + dx, Y: c.Y + dy}
}

func (c TileWorldCoord) String() string {
	return fmt.Sprintf("tile(%d, %d)", c.X, c.Y)
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("chunk(%d, %d)", c.X, c.Y)
}

// ChunkCoordFromWorld is shorthand for w.Chunk().
func ChunkCoordFromWorld(w TileWorldCoord) ChunkCoord {
	return w.Chunk()
}

// TileLocalCoordFromWorld is shorthand for w.Local().
func TileLocalCoordFromWorld(w TileWorldCoord) TileLocalCoord {
	return w.Local()
}
