package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinobuilder/internal/build"
	"casinobuilder/internal/config"
	"casinobuilder/internal/world"
)

func TestToolStateMaterialCycle(t *testing.T) {
	s := newToolState([]string{"carpet", "marble", "metal"}, "metal")
	assert.Equal(t, "metal", s.currentMaterial())

	s.cycleMaterial(1)
	assert.Equal(t, "carpet", s.currentMaterial())
	s.cycleMaterial(-1)
	assert.Equal(t, "metal", s.currentMaterial())
	s.cycleMaterial(-2)
	assert.Equal(t, "carpet", s.currentMaterial())

	empty := newToolState(nil, "metal")
	empty.cycleMaterial(1)
	assert.Equal(t, "", empty.currentMaterial())
}

func TestToolStateIntent(t *testing.T) {
	s := newToolState([]string{"marble"}, "marble")
	s.level = 2

	intent, err := s.intent(world.CellCoord{X: 1, Z: 1}, world.CellCoord{X: 0, Y: 7, Z: 0})
	require.NoError(t, err)
	assert.Equal(t, build.KindFloor, intent.Kind())
	assert.Equal(t, build.OperationPlace, intent.Operation())
	assert.Equal(t, "marble", intent.Payload().FloorMaterial)
	assert.Equal(t, []world.CellCoord{
		{X: 0, Y: 2, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 1},
		{X: 1, Y: 2, Z: 1},
	}, intent.Cells())
	assert.Equal(t, "place floor (marble)", s.label())

	s.tool = toolWall
	s.remove = true
	intent, err = s.intent(world.CellCoord{}, world.CellCoord{})
	require.NoError(t, err)
	assert.Equal(t, build.KindStructure, intent.Kind())
	assert.Equal(t, build.OperationRemove, intent.Operation())
	assert.Equal(t, "remove wall", s.label())
}

func TestSummarize(t *testing.T) {
	maps := world.NewMapManager(nil, world.MapOptions{})
	b, err := build.NewBuildManager(maps, build.Options{DefaultMaterial: "metal"})
	require.NoError(t, err)

	cells := []world.CellCoord{{X: 0}, {X: 1}, {X: 2}}
	place, err := build.NewFloorIntent(build.OperationPlace, cells, "")
	require.NoError(t, err)
	res, err := b.Execute(place)
	require.NoError(t, err)
	assert.Equal(t, "placed 3", summarize(res))

	walls, err := build.NewWallIntent(build.OperationPlace, cells[:2])
	require.NoError(t, err)
	_, err = b.Execute(walls)
	require.NoError(t, err)

	remove, err := build.NewFloorIntent(build.OperationRemove, append(cells, world.CellCoord{X: 9}), "")
	require.NoError(t, err)
	res, err = b.Execute(remove)
	require.NoError(t, err)
	assert.Equal(t, "removed 1, skipped 1, failed 2 (blocked x2)", summarize(res))
}

func TestHeightColor(t *testing.T) {
	low := heightColor(0, 4, false)
	high := heightColor(4, 4, false)
	assert.Less(t, low.R, high.R)
	assert.Equal(t, high, heightColor(10, 4, false))
	assert.Equal(t, low, heightColor(-1, 4, false))

	slope := heightColor(2, 4, true)
	assert.Greater(t, slope.B, slope.R)
	assert.Equal(t, heightColor(0, 0, false), low)
}

func TestToolStateSelectMaterial(t *testing.T) {
	s := newToolState([]string{"carpet", "marble", "metal"}, "carpet")
	assert.True(t, s.selectMaterial("metal"))
	assert.Equal(t, "metal", s.currentMaterial())
	assert.False(t, s.selectMaterial("gold"))
	assert.Equal(t, "metal", s.currentMaterial())
}

func TestMaterialLegendSortsByKey(t *testing.T) {
	lines := materialLegend(map[string]*config.MaterialData{
		"wood":   {Name: "Oak", Letter: "O"},
		"carpet": {Name: "Red Carpet"},
	})
	assert.Equal(t, []string{"- carpet (Red Carpet)", "O wood (Oak)"}, lines)
	assert.Empty(t, materialLegend(nil))
}
