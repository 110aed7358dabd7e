package world

import "fmt"

// CellRecord is the persisted form of one cell.
type CellRecord struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Z        int    `yaml:"z"`
	Floor    bool   `yaml:"floor"`
	Wall     bool   `yaml:"wall"`
	Material string `yaml:"material,omitempty"`
}

func (r CellRecord) Coord() CellCoord {
	return CellCoord{X: r.X, Y: r.Y, Z: r.Z}
}

// MapSnapshot is the persisted map state: only non-empty cells.
type MapSnapshot struct {
	Cells []CellRecord `yaml:"cells"`
}

// Snapshot captures every cell in coordinate order.
func (m *MapManager) Snapshot() MapSnapshot {
	cells := m.Cells()
	records := make([]CellRecord, 0, len(cells))
	for _, c := range cells {
		records = append(records, CellRecord{
			X:        c.Coord.X,
			Y:        c.Coord.Y,
			Z:        c.Coord.Z,
			Floor:    c.HasFloor,
			Wall:     c.HasWall,
			Material: c.FloorMaterial,
		})
	}
	return MapSnapshot{Cells: records}
}

// Restore replaces the grid with the snapshot's cells. The snapshot is fully
// validated first; on error the map is left untouched. Every coordinate
// before and after the restore is marked dirty.
func (m *MapManager) Restore(s MapSnapshot) error {
	seen := make(map[CellCoord]struct{}, len(s.Cells))
	for _, r := range s.Cells {
		c := r.Coord()
		if _, dup := seen[c]; dup {
			return fmt.Errorf("snapshot lists %s twice: %w", c, ErrInvalidArgument)
		}
		seen[c] = struct{}{}
		if !r.Floor && !r.Wall {
			return fmt.Errorf("snapshot stores empty %s: %w", c, ErrInvalidArgument)
		}
		if r.Wall && !r.Floor {
			return fmt.Errorf("snapshot has wall without floor at %s: %w", c, ErrInvalidArgument)
		}
	}

	for _, c := range m.grid.Coords() {
		m.dirty.Put(c)
	}
	m.grid.reset()
	for _, r := range s.Cells {
		cell := m.grid.GetOrCreateCell(r.Coord())
		cell.hasFloor = r.Floor
		cell.hasWall = r.Wall
		cell.floorMaterial = r.Material
		m.dirty.Put(r.Coord())
	}
	return nil
}
