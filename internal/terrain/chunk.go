package terrain

import "fmt"

// Vec2 is a continuous world-space position.
type Vec2 struct {
	X, Y float64
}

// TerrainChunk is a validated ChunkSize x ChunkSize block of tiles in row-major order.
type TerrainChunk struct {
	coord       ChunkCoord
	tiles       []*TerrainTile
	worldOrigin Vec2
}

// NewTerrainChunk checks the tile count and that every tile sits at the index
// its local coordinate names. The tiles slice is copied.
func NewTerrainChunk(coord ChunkCoord, tiles []*TerrainTile) (*TerrainChunk, error) {
	if len(tiles) != ChunkSize*ChunkSize {
		return nil, fmt.Errorf("%s has %d tiles, want %d: %w", coord, len(tiles), ChunkSize*ChunkSize, ErrInvalidArgument)
	}
	for i, tile := range tiles {
		if tile == nil {
			return nil, fmt.Errorf("%s tile %d is nil: %w", coord, i, ErrInvalidArgument)
		}
		if tile.local.Index() != i {
			return nil, fmt.Errorf("%s tile at index %d has %s: %w", coord, i, tile.local, ErrInvalidArgument)
		}
	}

	owned := make([]*TerrainTile, len(tiles))
	copy(owned, tiles)

	return &TerrainChunk{
		coord:       coord,
		tiles:       owned,
		worldOrigin: ChunkWorldOrigin(coord),
	}, nil
}

// ChunkWorldOrigin is the centered, tile-aligned visual origin of a chunk.
func ChunkWorldOrigin(coord ChunkCoord) Vec2 {
	const half = float64(ChunkSize) / 2
	return Vec2{
		X: float64(coord.X*ChunkSize) - half - 0.5,
		Y: float64(coord.Y*ChunkSize) - half - 0.5,
	}
}

func (c *TerrainChunk) Coord() ChunkCoord { return c.coord }
func (c *TerrainChunk) WorldOrigin() Vec2 { return c.worldOrigin }

// Tiles returns the tiles in row-major order. The slice is a copy.
func (c *TerrainChunk) Tiles() []*TerrainTile {
	out := make([]*TerrainTile, len(c.tiles))
	copy(out, c.tiles)
	return out
}

// Tile returns the tile at a local coordinate.
func (c *TerrainChunk) Tile(local TileLocalCoord) *TerrainTile {
	return c.tiles[local.Index()]
}
