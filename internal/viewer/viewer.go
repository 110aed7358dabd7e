// Package viewer is the interactive top-down builder: terrain underneath,
// floors and walls on top, drag to build.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"casinobuilder/internal/build"
	"casinobuilder/internal/config"
	"casinobuilder/internal/logging"
	"casinobuilder/internal/save"
	"casinobuilder/internal/terrain"
	"casinobuilder/internal/workers"
	"casinobuilder/internal/world"
)

const (
	sidebarWidth = 300
	padding      = 16
	maxLevel     = 8
)

type Options struct {
	Config    *config.Config
	Terrain   terrain.Snapshot
	Maps      *world.MapManager
	Builder   *build.BuildManager
	Materials *world.MaterialManager
	SavePath  string
	Logger    logging.Logger

	// Workers, when set, generates terrain chunks in parallel.
	Workers *workers.Pool
}

// Viewer implements ebiten.Game.
type Viewer struct {
	cfg       *config.Config
	snapshot  terrain.Snapshot
	terrain   *terrain.TerrainManager
	maps      *world.MapManager
	builder   *build.BuildManager
	materials *world.MaterialManager
	savePath  string
	logger    logging.Logger
	pool      *workers.Pool

	grid         grid
	panX, panY   int
	terrainLayer *ebiten.Image

	// cells mirrors the map; refreshed from the map's dirty set every frame.
	cells map[world.CellCoord]world.CellState

	tools     toolState
	legend    []string
	dragging  bool
	dragStart world.CellCoord
	preview   *build.Result
	status    string
	statusErr bool
}

func New(opts Options) (*Viewer, error) {
	if opts.Config == nil || opts.Maps == nil || opts.Builder == nil {
		return nil, errors.New("viewer: missing config or managers")
	}
	v := &Viewer{
		cfg:       opts.Config,
		maps:      opts.Maps,
		builder:   opts.Builder,
		materials: opts.Materials,
		savePath:  opts.SavePath,
		logger:    logging.OrDiscard(opts.Logger),
		pool:      opts.Workers,
		cells:     make(map[world.CellCoord]world.CellState),
	}
	tm, err := v.buildTerrain(opts.Terrain)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	v.setTerrain(opts.Terrain, tm)

	var keys []string
	if opts.Materials != nil {
		keys = opts.Materials.GetAllMaterialKeys()
		v.legend = materialLegend(opts.Materials.ListMaterials())
	}
	v.tools = newToolState(keys, opts.Config.Build.DefaultMaterial)

	for _, st := range v.maps.Cells() {
		v.cells[st.Coord] = st
	}
	v.syncCells()
	v.setStatus("ready", false)
	return v, nil
}

func (v *Viewer) buildTerrain(s terrain.Snapshot) (*terrain.TerrainManager, error) {
	if v.pool != nil {
		return s.BuildWith(v.pool.Runner(context.Background()), v.logger)
	}
	return s.Build(v.logger)
}

func (v *Viewer) setTerrain(s terrain.Snapshot, tm *terrain.TerrainManager) {
	v.snapshot = s
	v.terrain = tm
	v.grid = newGrid(tm.Bounds(), v.cfg.GetTilePixels())
	v.terrainLayer = nil
	v.panX, v.panY = 0, 0
}

func (v *Viewer) setStatus(msg string, isErr bool) {
	v.status = msg
	v.statusErr = isErr
}

// syncCells applies the map's pending changes to the local mirror.
func (v *Viewer) syncCells() {
	for _, c := range v.maps.DrainDirty() {
		if st, ok := v.maps.Cell(c); ok {
			v.cells[c] = st
		} else {
			delete(v.cells, c)
		}
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.handleKeys()
	v.handleMouse()
	v.syncCells()
	return nil
}

func (v *Viewer) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.tools.tool = toolFloor
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.tools.tool = toolWall
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.tools.remove = !v.tools.remove
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		v.tools.cycleMaterial(step)
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		v.selectMaterialByLetter(string(r))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) && v.tools.level < maxLevel {
		v.tools.level++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) && v.tools.level > 0 {
		v.tools.level--
	}

	panStep := v.grid.tile * 4
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.panX += panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.panX -= panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		v.panY += panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		v.panY -= panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		v.panX, v.panY = 0, 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		v.saveSession()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		v.loadSession()
	}
}

// selectMaterialByLetter switches to the floor tool with the material whose
// catalog letter was typed.
func (v *Viewer) selectMaterialByLetter(letter string) bool {
	if v.materials == nil {
		return false
	}
	key, ok := v.materials.GetMaterialKeyFromLetter(letter)
	if !ok || !v.tools.selectMaterial(key) {
		return false
	}
	v.tools.tool = toolFloor
	v.tools.remove = false
	v.setStatus("material "+key, false)
	return true
}

func (v *Viewer) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		v.dragging = false
		v.preview = nil
		return
	}

	mx, my := ebiten.CursorPosition()
	cell, inside := v.placedGrid().cellAt(mx, my, v.tools.level)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if inside {
			v.dragging = true
			v.dragStart = cell
			v.preview = v.evaluate(cell, cell)
		}
	case v.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.dragging = false
		v.preview = nil
		if inside {
			v.apply(v.dragStart, cell)
		}
	case v.dragging && inside:
		v.preview = v.evaluate(v.dragStart, cell)
	}
}

func (v *Viewer) evaluate(a, b world.CellCoord) *build.Result {
	intent, err := v.tools.intent(a, b)
	if err != nil {
		return nil
	}
	res, err := v.builder.Evaluate(intent)
	if err != nil {
		return nil
	}
	return res
}

func (v *Viewer) apply(a, b world.CellCoord) {
	intent, err := v.tools.intent(a, b)
	if err != nil {
		v.setStatus(err.Error(), true)
		return
	}
	res, err := v.builder.Execute(intent)
	if err != nil {
		v.setStatus(err.Error(), true)
		v.logger.Printf("build %s failed: %v", intent, err)
		return
	}
	msg := fmt.Sprintf("%s: %s", intent, summarize(res))
	v.setStatus(msg, !res.Succeeded())
	v.logger.Printf("%s", msg)
}

func (v *Viewer) saveSession() {
	s := save.Session{Terrain: v.snapshot, Map: v.maps.Snapshot()}
	if err := save.WriteSession(v.savePath, s); err != nil {
		v.setStatus(err.Error(), true)
		v.logger.Printf("save failed: %v", err)
		return
	}
	v.setStatus(fmt.Sprintf("saved %d cells", len(s.Map.Cells)), false)
}

func (v *Viewer) loadSession() {
	s, ok, err := save.ReadSession(v.savePath)
	if err != nil {
		v.setStatus(err.Error(), true)
		v.logger.Printf("load failed: %v", err)
		return
	}
	if !ok {
		v.setStatus("no saved session", true)
		return
	}
	tm, err := v.buildTerrain(s.Terrain)
	if err != nil {
		v.setStatus(err.Error(), true)
		return
	}
	if err := v.maps.Restore(s.Map); err != nil {
		v.setStatus(err.Error(), true)
		v.logger.Printf("load failed: %v", err)
		return
	}
	v.setTerrain(s.Terrain, tm)
	v.dragging = false
	v.preview = nil
	v.setStatus(fmt.Sprintf("loaded %d cells", len(s.Map.Cells)), false)
}

// mapPanel is the screen rectangle left of the sidebar.
func (v *Viewer) mapPanel() image.Rectangle {
	w := v.cfg.GetScreenWidth() - sidebarWidth - padding*3
	h := v.cfg.GetScreenHeight() - padding*2
	return image.Rect(padding, padding, padding+w, padding+h)
}

func (v *Viewer) placedGrid() grid {
	r := v.mapPanel()
	return v.grid.centered(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), v.panX, v.panY)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.cfg.GetScreenWidth(), v.cfg.GetScreenHeight()
}
