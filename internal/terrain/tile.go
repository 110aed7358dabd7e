package terrain

import "fmt"

// Direction is one of the eight neighbor directions. Y grows southward.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists all neighbor directions in bit order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Offset returns the (dx, dy) step toward the neighbor.
func (d Direction) Offset() (int, int) {
	o := directionOffsets[d&7]
	return o[0], o[1]
}

// Bit is the direction's flag inside a SlopeNeighborMask.
func (d Direction) Bit() SlopeNeighborMask {
	return SlopeNeighborMask(1) << (d & 7)
}

func (d Direction) String() string {
	return directionNames[d&7]
}

// SlopeNeighborMask records which of a flat tile's eight neighbors are sloped.
type SlopeNeighborMask uint8

// Has reports whether the direction's bit is set.
func (m SlopeNeighborMask) Has(d Direction) bool {
	return m&d.Bit() != 0
}

// CornerHeights holds the heights at a tile's four lattice corners.
type CornerHeights struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// IsSlope reports whether any two corners differ. Comparison is exact, so a NaN
// corner always counts as sloped and equal infinities count as flat.
func (h CornerHeights) IsSlope() bool {
	return h.TopLeft != h.TopRight ||
		h.TopLeft != h.BottomLeft ||
		h.TopLeft != h.BottomRight
}

// TerrainTile is the smallest terrain unit. Its heights are set exactly once.
type TerrainTile struct {
	local     TileLocalCoord
	world     TileWorldCoord
	heights   CornerHeights
	generated bool
	isSlope   bool
	slopeMask SlopeNeighborMask
}

// NewTerrainTile creates a tile with no heights yet.
func NewTerrainTile(local TileLocalCoord, world TileWorldCoord) *TerrainTile {
	return &TerrainTile{local: local, world: world}
}

// GenerateHeights fixes the corner heights. A second call fails with ErrInvalidOperation.
func (t *TerrainTile) GenerateHeights(h CornerHeights) error {
	if t.generated {
		return fmt.Errorf("heights for %s already generated: %w", t.world, ErrInvalidOperation)
	}
	t.heights = h
	t.isSlope = h.IsSlope()
	t.generated = true
	return nil
}

func (t *TerrainTile) LocalCoord() TileLocalCoord { return t.local }
func (t *TerrainTile) WorldCoord() TileWorldCoord { return t.world }
func (t *TerrainTile) Heights() CornerHeights { return t.heights }
func (t *TerrainTile) HasHeights() bool { return t.generated }
func (t *TerrainTile) TopLeft() float64 { return t.heights.TopLeft }
func (t *TerrainTile) TopRight() float64 { return t.heights.TopRight }
func (t *TerrainTile) BottomLeft() float64 { return t.heights.BottomLeft }
func (t *TerrainTile) BottomRight() float64 { return t.heights.BottomRight }

// IsSlope is false until heights are generated.
func (t *TerrainTile) IsSlope() bool { return t.isSlope }

// SlopeNeighborMask is always zero on sloped tiles.
func (t *TerrainTile) SlopeNeighborMask() SlopeNeighborMask { return t.slopeMask }

func (t *TerrainTile) clearSlopeNeighbors() {
	t.slopeMask = 0
}

// markSlopeNeighbor ORs d into the mask. Sloped tiles keep an empty mask.
func (t *TerrainTile) markSlopeNeighbor(d Direction) {
	if t.isSlope {
		return
	}
	t.slopeMask |= d.Bit()
}
