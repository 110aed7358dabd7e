package terrain

import "fmt"

// TerrainBounds is the inclusive chunk rectangle [-Half, +Half] on both axes.
type TerrainBounds struct {
	Half int
}

// NewTerrainBounds derives the bounds from the number of chunks per axis.
func NewTerrainBounds(chunkCountPerAxis int) (TerrainBounds, error) {
	if chunkCountPerAxis < 1 {
		return TerrainBounds{}, fmt.Errorf("chunk count per axis %d must be at least 1: %w", chunkCountPerAxis, ErrInvalidArgument)
	}
	return TerrainBounds{Half: chunkCountPerAxis / 2}, nil
}

func (b TerrainBounds) Min() ChunkCoord { return ChunkCoord{X: -b.Half, Y: -b.Half} }
func (b TerrainBounds) Max() ChunkCoord { return ChunkCoord{X: b.Half, Y: b.Half} }

// Contains is an inclusive range check on both axes.
func (b TerrainBounds) Contains(c ChunkCoord) bool {
	return c.X >= -b.Half && c.X <= b.Half && c.Y >= -b.Half && c.Y <= b.Half
}

// Width is the number of chunks along one axis.
func (b TerrainBounds) Width() int {
	return 2*b.Half + 1
}

// Each visits every chunk coordinate in row-major order.
func (b TerrainBounds) Each(fn func(ChunkCoord)) {
	for y := -b.Half; y <= b.Half; y++ {
		for x := -b.Half; x <= b.Half; x++ {
			fn(ChunkCoord{X: x, Y: y})
		}
	}
}
