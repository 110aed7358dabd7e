package viewer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinobuilder/internal/build"
	"casinobuilder/internal/config"
	"casinobuilder/internal/terrain"
	"casinobuilder/internal/workers"
	"casinobuilder/internal/world"
)

func newTestViewer(t *testing.T, pool *workers.Pool) (*Viewer, *world.MapManager) {
	t.Helper()
	cfg := config.Default()
	maps := world.NewMapManager(nil, world.MapOptions{})
	builder, err := build.NewBuildManager(maps, build.Options{DefaultMaterial: cfg.Build.DefaultMaterial})
	require.NoError(t, err)

	v, err := New(Options{
		Config:   cfg,
		Terrain:  terrain.NewSnapshot(1, terrain.DefaultHeightSettings(42)),
		Maps:     maps,
		Builder:  builder,
		SavePath: filepath.Join(t.TempDir(), "session.yaml"),
		Workers:  pool,
	})
	require.NoError(t, err)
	return v, maps
}

func TestNewRequiresManagers(t *testing.T) {
	_, err := New(Options{Config: config.Default()})
	assert.Error(t, err)
}

func TestApplyMirrorsCells(t *testing.T) {
	v, maps := newTestViewer(t, nil)
	assert.Equal(t, "ready", v.status)

	v.apply(world.CellCoord{X: 0, Z: 0}, world.CellCoord{X: 2, Z: 1})
	v.syncCells()
	assert.Len(t, v.cells, 6)
	assert.Equal(t, 6, maps.CellCount())
	assert.False(t, v.statusErr)
	assert.Contains(t, v.status, "placed 6")

	st := v.cells[world.CellCoord{X: 1, Z: 1}]
	assert.Equal(t, "metal", st.FloorMaterial)

	v.tools.remove = true
	v.apply(world.CellCoord{X: 0, Z: 0}, world.CellCoord{X: 0, Z: 0})
	v.syncCells()
	assert.Len(t, v.cells, 5)
	_, ok := v.cells[world.CellCoord{}]
	assert.False(t, ok)
}

func TestApplyReportsFailures(t *testing.T) {
	v, _ := newTestViewer(t, nil)
	v.apply(world.CellCoord{}, world.CellCoord{X: 1})
	v.tools.tool = toolWall
	v.apply(world.CellCoord{}, world.CellCoord{})

	v.tools.tool = toolFloor
	v.tools.remove = true
	v.apply(world.CellCoord{}, world.CellCoord{X: 1})
	assert.True(t, v.statusErr)
	assert.Contains(t, v.status, "blocked")
}

func TestEvaluateLeavesMapUntouched(t *testing.T) {
	v, maps := newTestViewer(t, nil)
	res := v.evaluate(world.CellCoord{}, world.CellCoord{X: 3, Z: 3})
	require.NotNil(t, res)
	assert.Equal(t, 16, res.Count(build.OutcomePlaced))
	assert.Zero(t, maps.CellCount())
}

func TestSaveAndLoadSession(t *testing.T) {
	pool := workers.NewPool(2)
	pool.Start()
	defer pool.Stop()

	v, maps := newTestViewer(t, pool)
	v.tools.level = 1
	v.apply(world.CellCoord{X: 4, Z: 4}, world.CellCoord{X: 5, Z: 4})
	v.saveSession()
	require.False(t, v.statusErr, v.status)

	v.tools.remove = true
	v.apply(world.CellCoord{X: 4, Z: 4}, world.CellCoord{X: 5, Z: 4})
	v.syncCells()
	assert.Empty(t, v.cells)

	v.loadSession()
	require.False(t, v.statusErr, v.status)
	v.syncCells()
	assert.Equal(t, 2, maps.CellCount())
	_, ok := v.cells[world.CellCoord{X: 5, Y: 1, Z: 4}]
	assert.True(t, ok)
	assert.True(t, v.terrain.IsGenerated())
}

func TestLoadWithoutSession(t *testing.T) {
	v, _ := newTestViewer(t, nil)
	v.loadSession()
	assert.True(t, v.statusErr)
	assert.Equal(t, "no saved session", v.status)
}

func TestDescribeCell(t *testing.T) {
	v, _ := newTestViewer(t, nil)
	v.apply(world.CellCoord{X: 2, Z: 3}, world.CellCoord{X: 2, Z: 3})
	v.syncCells()

	lines := v.describeCell(world.CellCoord{X: 2, Z: 3})
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "cell(2, 0, 3)", lines[0])
	assert.Equal(t, "floor metal", lines[len(lines)-1])

	outside := v.describeCell(world.CellCoord{X: -5, Z: 0})
	assert.Len(t, outside, 1)
}

func TestSelectMaterialByLetter(t *testing.T) {
	mm := world.NewMaterialManager()
	require.NoError(t, mm.SetMaterials(map[string]config.MaterialData{
		"metal":  {Name: "Brushed Metal", Color: [3]int{160, 165, 170}, Letter: "M"},
		"marble": {Name: "Marble", Color: [3]int{230, 230, 225}, Letter: "K"},
	}))

	cfg := config.Default()
	maps := world.NewMapManager(nil, world.MapOptions{})
	builder, err := build.NewBuildManager(maps, build.Options{DefaultMaterial: "metal"})
	require.NoError(t, err)
	v, err := New(Options{
		Config:    cfg,
		Terrain:   terrain.NewSnapshot(1, terrain.DefaultHeightSettings(42)),
		Maps:      maps,
		Builder:   builder,
		Materials: mm,
		SavePath:  filepath.Join(t.TempDir(), "session.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"K marble (Marble)", "M metal (Brushed Metal)"}, v.legend)

	v.tools.tool = toolWall
	v.tools.remove = true
	assert.True(t, v.selectMaterialByLetter("K"))
	assert.Equal(t, "marble", v.tools.currentMaterial())
	assert.Equal(t, toolFloor, v.tools.tool)
	assert.False(t, v.tools.remove)

	assert.False(t, v.selectMaterialByLetter("Z"))
	assert.Equal(t, "marble", v.tools.currentMaterial())

	plain, _ := newTestViewer(t, nil)
	assert.False(t, plain.selectMaterialByLetter("M"))
}
