package world

import "fmt"

// CellCoord addresses a map cell. Y is the building level.
type CellCoord struct {
	X, Y, Z int
}

func (c CellCoord) String() string {
	return fmt.Sprintf("cell(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Less orders coordinates by level, then row (Z), then column (X).
func (c CellCoord) Less(o CellCoord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	if c.Z != o.Z {
		return c.Z < o.Z
	}
	return c.X < o.X
}

// CellCheck classifies a validate step.
type CellCheck int

const (
	CellCheckValid CellCheck = iota
	CellCheckNoOp
	CellCheckNoFloor
	CellCheckBlocked
)

func (c CellCheck) IsValid() bool { return c == CellCheckValid }

func (c CellCheck) String() string {
	switch c {
	case CellCheckValid:
		return "valid"
	case CellCheckNoOp:
		return "no-op"
	case CellCheckNoFloor:
		return "no floor"
	case CellCheckBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("CellCheck(%d)", int(c))
	}
}

// MapCell is the buildable state at one coordinate. A wall may only exist on a floor.
type MapCell struct {
	hasFloor      bool
	hasWall       bool
	floorMaterial string
}

func (c *MapCell) HasFloor() bool { return c.hasFloor }
func (c *MapCell) HasWall() bool { return c.hasWall }
func (c *MapCell) FloorMaterial() string { return c.floorMaterial }

// IsEmpty is true when the cell holds neither floor nor wall.
func (c *MapCell) IsEmpty() bool { return !c.hasFloor && !c.hasWall }

func (c *MapCell) ValidatePlaceFloor() CellCheck {
	if c.hasFloor {
		return CellCheckNoOp
	}
	return CellCheckValid
}

func (c *MapCell) ValidateRemoveFloor() CellCheck {
	if !c.hasFloor {
		return CellCheckNoOp
	}
	if c.hasWall {
		return CellCheckBlocked
	}
	return CellCheckValid
}

func (c *MapCell) ValidatePlaceWall() CellCheck {
	if !c.hasFloor {
		return CellCheckNoFloor
	}
	if c.hasWall {
		return CellCheckNoOp
	}
	return CellCheckValid
}

func (c *MapCell) ValidateRemoveWall() CellCheck {
	if !c.hasWall {
		return CellCheckNoOp
	}
	return CellCheckValid
}

// ApplyPlaceFloor sets the floor. check must come from ValidatePlaceFloor and
// still match the cell's current state.
func (c *MapCell) ApplyPlaceFloor(check CellCheck, material string) error {
	if err := requireValid("place floor", check, c.ValidatePlaceFloor()); err != nil {
		return err
	}
	c.hasFloor = true
	c.floorMaterial = material
	return nil
}

func (c *MapCell) ApplyRemoveFloor(check CellCheck) error {
	if err := requireValid("remove floor", check, c.ValidateRemoveFloor()); err != nil {
		return err
	}
	c.hasFloor = false
	c.floorMaterial = ""
	return nil
}

func (c *MapCell) ApplyPlaceWall(check CellCheck) error {
	if err := requireValid("place wall", check, c.ValidatePlaceWall()); err != nil {
		return err
	}
	c.hasWall = true
	return nil
}

func (c *MapCell) ApplyRemoveWall(check CellCheck) error {
	if err := requireValid("remove wall", check, c.ValidateRemoveWall()); err != nil {
		return err
	}
	c.hasWall = false
	return nil
}

func requireValid(op string, given, current CellCheck) error {
	if !given.IsValid() {
		return fmt.Errorf("%s applied with %s check: %w", op, given, ErrInvalidOperation)
	}
	if !current.IsValid() {
		return fmt.Errorf("%s applied with stale check, cell is now %s: %w", op, current, ErrInvalidOperation)
	}
	return nil
}
