package viewer

import (
	"fmt"
	"sort"
	"strings"

	"casinobuilder/internal/build"
	"casinobuilder/internal/config"
	"casinobuilder/internal/mathutil"
	"casinobuilder/internal/world"
)

type tool int

const (
	toolFloor tool = iota
	toolWall
)

func (t tool) String() string {
	if t == toolWall {
		return "wall"
	}
	return "floor"
}

// toolState is the current brush: what a drag builds and on which level.
type toolState struct {
	tool      tool
	remove    bool
	level     int
	materials []string
	material  int
}

func newToolState(materials []string, preferred string) toolState {
	s := toolState{materials: materials}
	s.selectMaterial(preferred)
	return s
}

// currentMaterial is empty when no catalog is loaded; the builder then uses
// its default material.
func (s *toolState) currentMaterial() string {
	if len(s.materials) == 0 {
		return ""
	}
	return s.materials[s.material]
}

// selectMaterial makes key current; false if it is not in the list.
func (s *toolState) selectMaterial(key string) bool {
	for i, m := range s.materials {
		if m == key {
			s.material = i
			return true
		}
	}
	return false
}

func (s *toolState) cycleMaterial(step int) {
	if len(s.materials) == 0 {
		return
	}
	s.material = mathutil.FloorMod(s.material+step, len(s.materials))
}

func (s *toolState) operation() build.Operation {
	if s.remove {
		return build.OperationRemove
	}
	return build.OperationPlace
}

// intent turns a drag from a to b into a build intent on the current level.
func (s *toolState) intent(a, b world.CellCoord) (*build.Intent, error) {
	a.Y, b.Y = s.level, s.level
	cells := build.RectCells(a, b)
	if s.tool == toolWall {
		return build.NewWallIntent(s.operation(), cells)
	}
	return build.NewFloorIntent(s.operation(), cells, s.currentMaterial())
}

func (s *toolState) label() string {
	if s.tool == toolFloor && !s.remove && s.currentMaterial() != "" {
		return fmt.Sprintf("%s %s (%s)", s.operation(), s.tool, s.currentMaterial())
	}
	return fmt.Sprintf("%s %s", s.operation(), s.tool)
}

var summaryOrder = []build.Outcome{
	build.OutcomePlaced,
	build.OutcomeReplaced,
	build.OutcomeRemoved,
	build.OutcomeSkipped,
	build.OutcomeFailed,
}

// summarize renders a result as "placed 3, failed 1 (blocked)".
func summarize(res *build.Result) string {
	var parts []string
	for _, o := range summaryOrder {
		if n := res.Count(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", o, n))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	out := strings.Join(parts, ", ")
	if reasons := failureReasons(res); reasons != "" {
		out += " (" + reasons + ")"
	}
	return out
}

func failureReasons(res *build.Result) string {
	counts := make(map[build.FailureReason]int)
	var order []build.FailureReason
	for _, r := range res.Results() {
		if r.Outcome != build.OutcomeFailed {
			continue
		}
		if counts[r.Reason] == 0 {
			order = append(order, r.Reason)
		}
		counts[r.Reason]++
	}
	parts := make([]string, 0, len(order))
	for _, reason := range order {
		if counts[reason] > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", reason, counts[reason]))
		} else {
			parts = append(parts, reason.String())
		}
	}
	return strings.Join(parts, ", ")
}

// materialLegend lists the catalog as "M metal (Brushed Metal)" lines, sorted by key.
func materialLegend(materials map[string]*config.MaterialData) []string {
	keys := make([]string, 0, len(materials))
	for k := range materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		data := materials[k]
		letter := data.Letter
		if letter == "" {
			letter = "-"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s)", letter, k, data.Name))
	}
	return lines
}
