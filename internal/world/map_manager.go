package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"casinobuilder/internal/logging"
)

// MapResult is the map-level outcome of a floor or wall operation.
type MapResult int

const (
	MapResultSuccess MapResult = iota
	MapResultNoOp
	MapResultNoCell
	MapResultNoFloor
	MapResultBlocked
)

func (r MapResult) String() string {
	switch r {
	case MapResultSuccess:
		return "success"
	case MapResultNoOp:
		return "no-op"
	case MapResultNoCell:
		return "no cell"
	case MapResultNoFloor:
		return "no floor"
	case MapResultBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("MapResult(%d)", int(r))
	}
}

func resultFromCheck(check CellCheck) MapResult {
	switch check {
	case CellCheckValid:
		return MapResultSuccess
	case CellCheckNoOp:
		return MapResultNoOp
	case CellCheckNoFloor:
		return MapResultNoFloor
	default:
		return MapResultBlocked
	}
}

// CellState is a read-only copy of a cell.
type CellState struct {
	Coord         CellCoord
	HasFloor      bool
	HasWall       bool
	FloorMaterial string
}

// MapOptions configures a MapManager.
type MapOptions struct {
	Logger logging.Logger

	// StrictInvariants panics on a sparse-cleanup anomaly instead of logging it.
	StrictInvariants bool
}

// cellStore is the grid surface the manager needs; *MapGrid implements it.
type cellStore interface {
	GetOrCreateCell(c CellCoord) *MapCell
	GetCell(c CellCoord) *MapCell
	TryRemoveCell(c CellCoord) bool
	Len() int
	Coords() []CellCoord
	reset()
}

// MapManager is the only mutator of its grid. Every successful mutation marks
// the coordinate dirty for the visual layer.
type MapManager struct {
	grid   cellStore
	logger logging.Logger
	strict bool
	dirty  mapset.Set[CellCoord]
}

// NewMapManager takes ownership of grid; a nil grid starts empty.
func NewMapManager(grid *MapGrid, opts MapOptions) *MapManager {
	if grid == nil {
		grid = NewMapGrid()
	}
	return &MapManager{
		grid:   grid,
		logger: logging.OrDiscard(opts.Logger),
		strict: opts.StrictInvariants,
		dirty:  mapset.New[CellCoord](),
	}
}

// Cell returns a copy of the cell at c.
func (m *MapManager) Cell(c CellCoord) (CellState, bool) {
	cell := m.grid.GetCell(c)
	if cell == nil {
		return CellState{}, false
	}
	return stateOf(c, cell), true
}

// Cells returns copies of every stored cell in coordinate order.
func (m *MapManager) Cells() []CellState {
	coords := m.grid.Coords()
	out := make([]CellState, 0, len(coords))
	for _, c := range coords {
		out = append(out, stateOf(c, m.grid.GetCell(c)))
	}
	return out
}

func (m *MapManager) CellCount() int { return m.grid.Len() }

func stateOf(c CellCoord, cell *MapCell) CellState {
	return CellState{
		Coord:         c,
		HasFloor:      cell.hasFloor,
		HasWall:       cell.hasWall,
		FloorMaterial: cell.floorMaterial,
	}
}

// ValidatePlaceFloor succeeds on absent cells; placement creates them.
func (m *MapManager) ValidatePlaceFloor(c CellCoord) MapResult {
	cell := m.grid.GetCell(c)
	if cell == nil {
		return MapResultSuccess
	}
	return resultFromCheck(cell.ValidatePlaceFloor())
}

// PlaceFloor creates the cell on demand when the placement is valid.
func (m *MapManager) PlaceFloor(c CellCoord, material string) (MapResult, error) {
	if r := m.ValidatePlaceFloor(c); r != MapResultSuccess {
		return r, nil
	}
	cell := m.grid.GetOrCreateCell(c)
	if err := cell.ApplyPlaceFloor(cell.ValidatePlaceFloor(), material); err != nil {
		return MapResultSuccess, fmt.Errorf("place floor at %s: %w", c, err)
	}
	m.dirty.Put(c)
	return MapResultSuccess, nil
}

func (m *MapManager) ValidateRemoveFloor(c CellCoord) MapResult {
	cell := m.grid.GetCell(c)
	if cell == nil {
		return MapResultNoCell
	}
	return resultFromCheck(cell.ValidateRemoveFloor())
}

// RemoveFloor clears the floor and drops the cell from the grid once empty.
func (m *MapManager) RemoveFloor(c CellCoord) (MapResult, error) {
	if r := m.ValidateRemoveFloor(c); r != MapResultSuccess {
		return r, nil
	}
	cell := m.grid.GetCell(c)
	if err := cell.ApplyRemoveFloor(cell.ValidateRemoveFloor()); err != nil {
		return MapResultSuccess, fmt.Errorf("remove floor at %s: %w", c, err)
	}
	m.dirty.Put(c)
	m.cleanup(c, cell)
	return MapResultSuccess, nil
}

func (m *MapManager) ValidatePlaceWall(c CellCoord) MapResult {
	cell := m.grid.GetCell(c)
	if cell == nil {
		return MapResultNoCell
	}
	return resultFromCheck(cell.ValidatePlaceWall())
}

func (m *MapManager) PlaceWall(c CellCoord) (MapResult, error) {
	if r := m.ValidatePlaceWall(c); r != MapResultSuccess {
		return r, nil
	}
	cell := m.grid.GetCell(c)
	if err := cell.ApplyPlaceWall(cell.ValidatePlaceWall()); err != nil {
		return MapResultSuccess, fmt.Errorf("place wall at %s: %w", c, err)
	}
	m.dirty.Put(c)
	return MapResultSuccess, nil
}

func (m *MapManager) ValidateRemoveWall(c CellCoord) MapResult {
	cell := m.grid.GetCell(c)
	if cell == nil {
		return MapResultNoCell
	}
	return resultFromCheck(cell.ValidateRemoveWall())
}

func (m *MapManager) RemoveWall(c CellCoord) (MapResult, error) {
	if r := m.ValidateRemoveWall(c); r != MapResultSuccess {
		return r, nil
	}
	cell := m.grid.GetCell(c)
	if err := cell.ApplyRemoveWall(cell.ValidateRemoveWall()); err != nil {
		return MapResultSuccess, fmt.Errorf("remove wall at %s: %w", c, err)
	}
	m.dirty.Put(c)
	m.cleanup(c, cell)
	return MapResultSuccess, nil
}

// cleanup drops an emptied cell. A cell that should be empty but stays in
// the grid panics in strict mode and is logged otherwise.
func (m *MapManager) cleanup(c CellCoord, cell *MapCell) {
	expectEmpty := cell.IsEmpty()
	if m.grid.TryRemoveCell(c) || !expectEmpty {
		return
	}
	msg := fmt.Sprintf("map: empty %s could not be removed from the grid", c)
	if m.strict {
		panic(msg)
	}
	m.logger.Printf("%s; keeping stray cell", msg)
}

// DrainDirty returns the coordinates changed since the last drain, in coordinate order.
func (m *MapManager) DrainDirty() []CellCoord {
	out := make([]CellCoord, 0, m.dirty.Size())
	m.dirty.Each(func(c CellCoord) {
		out = append(out, c)
	})
	m.dirty = mapset.New[CellCoord]()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
