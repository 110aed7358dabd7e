package main

import (
	"log"
	"os"
	"path/filepath"

	"casinobuilder/internal/build"
	"casinobuilder/internal/config"
	"casinobuilder/internal/logging"
	"casinobuilder/internal/save"
	"casinobuilder/internal/terrain"
	"casinobuilder/internal/viewer"
	"casinobuilder/internal/workers"
	"casinobuilder/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ensureRuntimeCWD()

	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	logger := logging.New("[casino] ")

	// Floor materials are optional; without them any material name is accepted.
	var catalog build.MaterialCatalog
	materials := world.NewMaterialManager()
	if err := materials.LoadMaterialConfig(cfg.Build.MaterialsFile); err != nil {
		log.Printf("Warning: Failed to load material config: %v", err)
		materials = nil
	} else {
		catalog = materials
	}

	maps := world.NewMapManager(nil, world.MapOptions{
		Logger:           logger,
		StrictInvariants: cfg.Build.StrictInvariants,
	})
	builder, err := build.NewBuildManager(maps, build.Options{
		Materials:       catalog,
		DefaultMaterial: cfg.Build.DefaultMaterial,
		Logger:          logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	t := cfg.Terrain
	snapshot := terrain.NewSnapshot(t.ChunkCountPerAxis, terrain.HeightSettings{
		Seed:        t.Seed,
		Step:        t.HeightStep,
		MaxHeight:   t.MaxHeight,
		Frequency:   t.Frequency,
		Amplitude:   t.Amplitude,
		Persistence: t.Persistence,
		Octaves:     t.Octaves,
	})

	pool := workers.NewPool(0)
	pool.Start()
	defer pool.Stop()

	v, err := viewer.New(viewer.Options{
		Config:    cfg,
		Terrain:   snapshot,
		Maps:      maps,
		Builder:   builder,
		Materials: materials,
		SavePath:  save.Path(cfg.Save.Directory, cfg.Save.FileName),
		Logger:    logger,
		Workers:   pool,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// ensureRuntimeCWD moves to the executable's directory when config.yaml is
// not in the working directory.
func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
