package build

import "casinobuilder/internal/world"

// OperationResult is the outcome for one target cell.
type OperationResult struct {
	Cell    world.CellCoord
	Outcome Outcome
	Reason  FailureReason
}

// Result is the immutable per-cell report of an Evaluate or Execute call.
// Results follow the intent's cell order.
type Result struct {
	intent  *Intent
	results []OperationResult
	dryRun  bool
}

func (r *Result) Intent() *Intent { return r.intent }

// DryRun is true for results produced by Evaluate.
func (r *Result) DryRun() bool { return r.dryRun }

func (r *Result) Len() int { return len(r.results) }

// Results returns a copy of the per-cell outcomes.
func (r *Result) Results() []OperationResult {
	out := make([]OperationResult, len(r.results))
	copy(out, r.results)
	return out
}

// Count returns how many cells ended with the outcome.
func (r *Result) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Succeeded reports whether no cell failed. Skipped cells do not count as failures.
func (r *Result) Succeeded() bool {
	return r.Count(OutcomeFailed) == 0
}

// AnySucceeded reports whether at least one cell changed.
func (r *Result) AnySucceeded() bool {
	for _, res := range r.results {
		if res.Outcome.Changed() {
			return true
		}
	}
	return false
}

// ChangedCells lists the cells the operation mutated, in intent order.
func (r *Result) ChangedCells() []world.CellCoord {
	var out []world.CellCoord
	for _, res := range r.results {
		if res.Outcome.Changed() {
			out = append(out, res.Cell)
		}
	}
	return out
}
