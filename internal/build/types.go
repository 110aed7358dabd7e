package build

import "fmt"

// Kind is the family of thing an intent builds.
type Kind int

const (
	KindFloor Kind = iota
	KindStructure
	KindFurniture
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindStructure:
		return "structure"
	case KindFurniture:
		return "furniture"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool { return k >= KindFloor && k <= KindFurniture }

// Operation is place or remove.
type Operation int

const (
	OperationPlace Operation = iota
	OperationRemove
)

func (o Operation) String() string {
	switch o {
	case OperationPlace:
		return "place"
	case OperationRemove:
		return "remove"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

func (o Operation) valid() bool { return o == OperationPlace || o == OperationRemove }

// Outcome is what happened to one target cell.
type Outcome int

const (
	OutcomePlaced Outcome = iota
	OutcomeReplaced
	OutcomeRemoved
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeRemoved:
		return "removed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Changed reports whether the outcome mutated the map.
func (o Outcome) Changed() bool {
	return o == OutcomePlaced || o == OutcomeReplaced || o == OutcomeRemoved
}

// FailureReason explains a skipped or failed cell. SameType, NoFunds,
// NoStructure and NoFurniture are reserved for handlers registered later.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonNoFloor
	ReasonNoStructure
	ReasonNoFurniture
	ReasonSameType
	ReasonBlocked
	ReasonNoFunds
	ReasonNoCell
	ReasonInternalError
)

var reasonNames = [...]string{
	ReasonNone:          "none",
	ReasonNoFloor:       "no floor",
	ReasonNoStructure:   "no structure",
	ReasonNoFurniture:   "no furniture",
	ReasonSameType:      "same type",
	ReasonBlocked:       "blocked",
	ReasonNoFunds:       "no funds",
	ReasonNoCell:        "no cell",
	ReasonInternalError: "internal error",
}

func (r FailureReason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("FailureReason(%d)", int(r))
}
