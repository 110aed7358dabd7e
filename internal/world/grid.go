package world

import "sort"

// MapGrid is a sparse coordinate-keyed store of cells. Absent means empty.
type MapGrid struct {
	cells map[CellCoord]*MapCell
}

func NewMapGrid() *MapGrid {
	return &MapGrid{cells: make(map[CellCoord]*MapCell)}
}

// GetOrCreateCell inserts an empty cell on first reference.
func (g *MapGrid) GetOrCreateCell(c CellCoord) *MapCell {
	if cell, ok := g.cells[c]; ok {
		return cell
	}
	cell := &MapCell{}
	g.cells[c] = cell
	return cell
}

// GetCell returns nil when no cell exists. It never inserts.
func (g *MapGrid) GetCell(c CellCoord) *MapCell {
	return g.cells[c]
}

// TryRemoveCell removes the cell only if it is present and empty.
func (g *MapGrid) TryRemoveCell(c CellCoord) bool {
	cell, ok := g.cells[c]
	if !ok || !cell.IsEmpty() {
		return false
	}
	delete(g.cells, c)
	return true
}

func (g *MapGrid) Len() int { return len(g.cells) }

// Coords returns every stored coordinate in CellCoord.Less order.
func (g *MapGrid) Coords() []CellCoord {
	out := make([]CellCoord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (g *MapGrid) reset() {
	g.cells = make(map[CellCoord]*MapCell)
}
