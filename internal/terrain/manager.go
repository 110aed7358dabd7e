package terrain

import (
	"fmt"
	"math"
	"sort"

	"casinobuilder/internal/logging"
)

// ManagerState tracks the one-way generation lifecycle.
type ManagerState int

const (
	StateUninitialized ManagerState = iota
	StateGenerated
)

func (s ManagerState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateGenerated:
		return "generated"
	default:
		return fmt.Sprintf("ManagerState(%d)", int(s))
	}
}

// TerrainManager generates chunks across the bounds and answers lookups by coordinate.
type TerrainManager struct {
	bounds  TerrainBounds
	sampler HeightSampler
	logger  logging.Logger
	chunks  map[ChunkCoord]*TerrainChunk
	state   ManagerState
}

// NewTerrainManager wires the bounds and height source. Nothing is generated yet.
func NewTerrainManager(bounds TerrainBounds, sampler HeightSampler, logger logging.Logger) (*TerrainManager, error) {
	if sampler == nil {
		return nil, fmt.Errorf("height sampler is nil: %w", ErrInvalidArgument)
	}
	return &TerrainManager{
		bounds:  bounds,
		sampler: sampler,
		logger:  logging.OrDiscard(logger),
		state:   StateUninitialized,
	}, nil
}

func (m *TerrainManager) Bounds() TerrainBounds { return m.bounds }
func (m *TerrainManager) State() ManagerState { return m.state }
func (m *TerrainManager) IsGenerated() bool { return m.state == StateGenerated }
func (m *TerrainManager) ChunkCount() int { return len(m.chunks) }

// ChunkRunner calls synth once for every index in [0, n) and reports whether
// the run completed. Runners may call synth from several goroutines.
type ChunkRunner func(n int, synth func(i int)) error

func runSequential(n int, synth func(i int)) error {
	for i := 0; i < n; i++ {
		synth(i)
	}
	return nil
}

// Generate builds every chunk inside the bounds, then resolves slope-neighbor
// masks across chunk borders. It may run only once.
func (m *TerrainManager) Generate() error {
	return m.GenerateWith(nil)
}

// GenerateWith is Generate with chunk synthesis driven by run; nil runs the
// chunks in order. A runner that calls synth concurrently needs a sampler
// that is safe for concurrent use. If run fails the manager stays
// uninitialized and Generate may be retried.
func (m *TerrainManager) GenerateWith(run ChunkRunner) error {
	if m.state == StateGenerated {
		return fmt.Errorf("terrain already generated: %w", ErrInvalidOperation)
	}
	if run == nil {
		run = runSequential
	}

	var coords []ChunkCoord
	m.bounds.Each(func(coord ChunkCoord) {
		coords = append(coords, coord)
	})

	built := make([]*TerrainChunk, len(coords))
	errs := make([]error, len(coords))
	err := run(len(coords), func(i int) {
		built[i], errs[i] = m.synthesizeChunk(coords[i])
	})
	if err != nil {
		return fmt.Errorf("generate terrain: %w", err)
	}

	chunks := make(map[ChunkCoord]*TerrainChunk, len(coords))
	for i, coord := range coords {
		if errs[i] != nil {
			return fmt.Errorf("generate %s: %w", coord, errs[i])
		}
		chunks[coord] = built[i]
	}

	m.chunks = chunks
	sloped := m.resolveSlopeNeighbors()
	m.state = StateGenerated

	m.logger.Printf("Generated %d terrain chunks (%d sloped tiles)", len(chunks), sloped)
	return nil
}

// synthesizeChunk samples the (ChunkSize+1)^2 corner lattice once and hands each
// tile its four corners, so a corner shared by neighbors has a single value.
func (m *TerrainManager) synthesizeChunk(coord ChunkCoord) (*TerrainChunk, error) {
	const stride = ChunkSize + 1
	baseX := coord.X * ChunkSize
	baseY := coord.Y * ChunkSize

	lattice := make([]float64, stride*stride)
	for ly := 0; ly < stride; ly++ {
		for lx := 0; lx < stride; lx++ {
			lattice[ly*stride+lx] = m.sampler.GetHeight(baseX+lx, baseY+ly)
		}
	}

	tiles := make([]*TerrainTile, 0, ChunkSize*ChunkSize)
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			local, err := NewTileLocalCoord(lx, ly)
			if err != nil {
				return nil, err
			}
			tile := NewTerrainTile(local, NewTileWorldCoord(coord, local))
			err = tile.GenerateHeights(CornerHeights{
				TopLeft:     lattice[ly*stride+lx],
				TopRight:    lattice[ly*stride+lx+1],
				BottomLeft:  lattice[(ly+1)*stride+lx],
				BottomRight: lattice[(ly+1)*stride+lx+1],
			})
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, tile)
		}
	}

	return NewTerrainChunk(coord, tiles)
}

// ResolveSlopeNeighbors clears and recomputes every flat tile's mask.
func (m *TerrainManager) ResolveSlopeNeighbors() error {
	if m.state != StateGenerated {
		return fmt.Errorf("resolve slope neighbors before generation: %w", ErrInvalidOperation)
	}
	m.resolveSlopeNeighbors()
	return nil
}

// resolveSlopeNeighbors returns the number of sloped tiles seen.
func (m *TerrainManager) resolveSlopeNeighbors() int {
	sloped := 0
	for _, chunk := range m.chunks {
		for _, tile := range chunk.tiles {
			tile.clearSlopeNeighbors()
			if tile.IsSlope() {
				sloped++
				continue
			}
			for _, d := range Directions {
				dx, dy := d.Offset()
				neighbor, ok := m.lookupTile(tile.world.Offset(dx, dy))
				if !ok || !neighbor.IsSlope() {
					continue
				}
				tile.markSlopeNeighbor(d)
			}
		}
	}
	return sloped
}

func (m *TerrainManager) lookupTile(w TileWorldCoord) (*TerrainTile, bool) {
	chunk, ok := m.chunks[w.Chunk()]
	if !ok {
		return nil, false
	}
	return chunk.Tile(w.Local()), true
}

// TryGetChunk reports false for coordinates outside the bounds or before generation.
func (m *TerrainManager) TryGetChunk(coord ChunkCoord) (*TerrainChunk, bool) {
	chunk, ok := m.chunks[coord]
	return chunk, ok
}

// TryGetChunkFromWorldCoord looks up the chunk owning a world tile.
func (m *TerrainManager) TryGetChunkFromWorldCoord(w TileWorldCoord) (*TerrainChunk, bool) {
	return m.TryGetChunk(w.Chunk())
}

// TryGetTileFromWorldCoord looks up a tile by world coordinate.
func (m *TerrainManager) TryGetTileFromWorldCoord(w TileWorldCoord) (*TerrainTile, bool) {
	return m.lookupTile(w)
}

// TryGetHeightAt bilinearly interpolates the owning tile's corners at a
// continuous world position.
func (m *TerrainManager) TryGetHeightAt(x, y float64) (float64, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, false
	}
	tile, ok := m.lookupTile(TileWorldCoordFromPosition(x, y))
	if !ok {
		return 0, false
	}
	fx := x - math.Floor(x)
	fy := y - math.Floor(y)
	h := tile.heights
	top := h.TopLeft + (h.TopRight-h.TopLeft)*fx
	bottom := h.BottomLeft + (h.BottomRight-h.BottomLeft)*fx
	return top + (bottom-top)*fy, true
}

// Chunks returns every generated chunk ordered by Y, then X.
func (m *TerrainManager) Chunks() []*TerrainChunk {
	out := make([]*TerrainChunk, 0, len(m.chunks))
	for _, chunk := range m.chunks {
		out = append(out, chunk)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].coord, out[j].coord
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
