package build

import (
	"errors"
	"fmt"

	"casinobuilder/internal/mathutil"
	"casinobuilder/internal/world"
)

// ErrInvalidArgument is returned for malformed intents.
var ErrInvalidArgument = errors.New("build: invalid argument")

// Payload carries kind-specific data.
type Payload struct {
	FloorMaterial string
}

// Intent is an immutable batch request over an ordered list of cells.
type Intent struct {
	kind    Kind
	op      Operation
	cells   []world.CellCoord
	payload Payload
}

// NewIntent copies cells; later edits to the caller's slice do not leak in.
func NewIntent(kind Kind, op Operation, cells []world.CellCoord, payload Payload) (*Intent, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("intent has no target cells: %w", ErrInvalidArgument)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("unknown build kind %s: %w", kind, ErrInvalidArgument)
	}
	if !op.valid() {
		return nil, fmt.Errorf("unknown build operation %s: %w", op, ErrInvalidArgument)
	}

	owned := make([]world.CellCoord, len(cells))
	copy(owned, cells)
	return &Intent{kind: kind, op: op, cells: owned, payload: payload}, nil
}

// NewFloorIntent builds or removes floors of the given material.
func NewFloorIntent(op Operation, cells []world.CellCoord, material string) (*Intent, error) {
	return NewIntent(KindFloor, op, cells, Payload{FloorMaterial: material})
}

// NewWallIntent builds or removes walls.
func NewWallIntent(op Operation, cells []world.CellCoord) (*Intent, error) {
	return NewIntent(KindStructure, op, cells, Payload{})
}

func (i *Intent) Kind() Kind { return i.kind }
func (i *Intent) Operation() Operation { return i.op }
func (i *Intent) Payload() Payload { return i.payload }
func (i *Intent) Len() int { return len(i.cells) }

// Cells returns a copy of the target list in order.
func (i *Intent) Cells() []world.CellCoord {
	out := make([]world.CellCoord, len(i.cells))
	copy(out, i.cells)
	return out
}

func (i *Intent) String() string {
	return fmt.Sprintf("%s %s x%d", i.op, i.kind, len(i.cells))
}

// RectCells enumerates the inclusive box between two corners, level by level,
// each level in row-major (Z, then X) order. This is what a drag gesture selects.
func RectCells(a, b world.CellCoord) []world.CellCoord {
	minX, maxX := mathutil.IntMin(a.X, b.X), mathutil.IntMax(a.X, b.X)
	minY, maxY := mathutil.IntMin(a.Y, b.Y), mathutil.IntMax(a.Y, b.Y)
	minZ, maxZ := mathutil.IntMin(a.Z, b.Z), mathutil.IntMax(a.Z, b.Z)

	out := make([]world.CellCoord, 0, (maxX-minX+1)*(maxY-minY+1)*(maxZ-minZ+1))
	for y := minY; y <= maxY; y++ {
		for z := minZ; z <= maxZ; z++ {
			for x := minX; x <= maxX; x++ {
				out = append(out, world.CellCoord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}
