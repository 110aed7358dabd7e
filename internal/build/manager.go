package build

import (
	"fmt"

	"casinobuilder/internal/logging"
	"casinobuilder/internal/world"
)

// Handler resolves one kind of build against the map. Evaluate must not mutate.
type Handler interface {
	Evaluate(intent *Intent, cell world.CellCoord) OperationResult
	Execute(intent *Intent, cell world.CellCoord) (OperationResult, error)
}

// MaterialCatalog is consulted for floor placement when attached.
type MaterialCatalog interface {
	HasMaterial(key string) bool
}

// Options configures a BuildManager.
type Options struct {
	Materials       MaterialCatalog
	DefaultMaterial string
	Logger          logging.Logger
}

// BuildManager validates and applies intents cell by cell. A failure on one
// cell never stops the rest of the batch and nothing is rolled back.
type BuildManager struct {
	maps     *world.MapManager
	handlers map[Kind]Handler
	logger   logging.Logger
}

// NewBuildManager registers the floor and structure handlers over maps.
func NewBuildManager(maps *world.MapManager, opts Options) (*BuildManager, error) {
	if maps == nil {
		return nil, fmt.Errorf("map manager is nil: %w", ErrInvalidArgument)
	}
	b := &BuildManager{
		maps:     maps,
		handlers: make(map[Kind]Handler),
		logger:   logging.OrDiscard(opts.Logger),
	}
	b.handlers[KindFloor] = &floorHandler{
		maps:            maps,
		materials:       opts.Materials,
		defaultMaterial: opts.DefaultMaterial,
	}
	b.handlers[KindStructure] = &wallHandler{maps: maps}
	return b, nil
}

// RegisterHandler installs or replaces the handler for a kind.
func (b *BuildManager) RegisterHandler(kind Kind, h Handler) {
	if h == nil {
		delete(b.handlers, kind)
		return
	}
	b.handlers[kind] = h
}

// Evaluate reports what Execute would do, cell by cell, without mutating the map.
// Cells are judged independently against the current map.
func (b *BuildManager) Evaluate(intent *Intent) (*Result, error) {
	if intent == nil {
		return nil, fmt.Errorf("evaluate nil intent: %w", ErrInvalidArgument)
	}
	h := b.handlerFor(intent)
	results := make([]OperationResult, 0, len(intent.cells))
	for _, cell := range intent.cells {
		if h == nil {
			results = append(results, failed(cell, ReasonInternalError))
			continue
		}
		results = append(results, h.Evaluate(intent, cell))
	}
	return &Result{intent: intent, results: results, dryRun: true}, nil
}

// Execute applies the intent in cell order.
func (b *BuildManager) Execute(intent *Intent) (*Result, error) {
	if intent == nil {
		return nil, fmt.Errorf("execute nil intent: %w", ErrInvalidArgument)
	}
	h := b.handlerFor(intent)
	results := make([]OperationResult, 0, len(intent.cells))
	for _, cell := range intent.cells {
		if h == nil {
			results = append(results, failed(cell, ReasonInternalError))
			continue
		}
		res, err := h.Execute(intent, cell)
		if err != nil {
			b.logger.Printf("build: %s at %s: %v", intent, cell, err)
			res = failed(cell, ReasonInternalError)
		}
		results = append(results, res)
	}
	return &Result{intent: intent, results: results}, nil
}

func (b *BuildManager) handlerFor(intent *Intent) Handler {
	h, ok := b.handlers[intent.kind]
	if !ok {
		b.logger.Printf("build: no handler for %s, failing %d cells", intent.kind, len(intent.cells))
		return nil
	}
	return h
}

func failed(cell world.CellCoord, reason FailureReason) OperationResult {
	return OperationResult{Cell: cell, Outcome: OutcomeFailed, Reason: reason}
}

// fromMapResult translates a map-level result for the operation.
func fromMapResult(cell world.CellCoord, op Operation, r world.MapResult) OperationResult {
	switch r {
	case world.MapResultSuccess:
		if op == OperationPlace {
			return OperationResult{Cell: cell, Outcome: OutcomePlaced}
		}
		return OperationResult{Cell: cell, Outcome: OutcomeRemoved}
	case world.MapResultNoOp:
		return OperationResult{Cell: cell, Outcome: OutcomeSkipped, Reason: ReasonNone}
	case world.MapResultNoCell:
		return OperationResult{Cell: cell, Outcome: OutcomeSkipped, Reason: ReasonNoCell}
	case world.MapResultNoFloor:
		return failed(cell, ReasonNoFloor)
	case world.MapResultBlocked:
		return failed(cell, ReasonBlocked)
	default:
		return failed(cell, ReasonInternalError)
	}
}

type floorHandler struct {
	maps            *world.MapManager
	materials       MaterialCatalog
	defaultMaterial string
}

func (h *floorHandler) material(intent *Intent) (string, bool) {
	m := intent.payload.FloorMaterial
	if m == "" {
		m = h.defaultMaterial
	}
	if h.materials != nil && !h.materials.HasMaterial(m) {
		return m, false
	}
	return m, true
}

func (h *floorHandler) Evaluate(intent *Intent, cell world.CellCoord) OperationResult {
	if intent.op == OperationRemove {
		return fromMapResult(cell, intent.op, h.maps.ValidateRemoveFloor(cell))
	}
	if _, ok := h.material(intent); !ok {
		return failed(cell, ReasonInternalError)
	}
	return fromMapResult(cell, intent.op, h.maps.ValidatePlaceFloor(cell))
}

func (h *floorHandler) Execute(intent *Intent, cell world.CellCoord) (OperationResult, error) {
	if intent.op == OperationRemove {
		r, err := h.maps.RemoveFloor(cell)
		return fromMapResult(cell, intent.op, r), err
	}
	material, ok := h.material(intent)
	if !ok {
		return OperationResult{}, fmt.Errorf("unknown floor material %q", material)
	}
	r, err := h.maps.PlaceFloor(cell, material)
	return fromMapResult(cell, intent.op, r), err
}

type wallHandler struct {
	maps *world.MapManager
}

func (h *wallHandler) Evaluate(intent *Intent, cell world.CellCoord) OperationResult {
	if intent.op == OperationRemove {
		return fromMapResult(cell, intent.op, h.maps.ValidateRemoveWall(cell))
	}
	return fromMapResult(cell, intent.op, h.maps.ValidatePlaceWall(cell))
}

func (h *wallHandler) Execute(intent *Intent, cell world.CellCoord) (OperationResult, error) {
	if intent.op == OperationRemove {
		r, err := h.maps.RemoveWall(cell)
		return fromMapResult(cell, intent.op, r), err
	}
	r, err := h.maps.PlaceWall(cell)
	return fromMapResult(cell, intent.op, r), err
}
