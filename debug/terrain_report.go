package main

import (
	"fmt"
	"log"
	"sort"

	"casinobuilder/internal/config"
	"casinobuilder/internal/terrain"
	"casinobuilder/internal/world"
)

func main() {
	cfg, err := config.LoadConfig("../config.yaml")
	if err != nil {
		log.Printf("Warning: %v; using defaults", err)
		cfg = config.Default()
	}

	fmt.Println("Terrain Report")
	fmt.Println("==============")

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
	tm, err := snapshot.Build(log.Default())
	if err != nil {
		log.Fatalf("Failed to generate terrain: %v", err)
	}
	fmt.Printf("seed %d, %d chunks, bounds %s..%s\n", t.Seed, tm.ChunkCount(), tm.Bounds().Min(), tm.Bounds().Max())

	// Per-chunk height range and slope counts
	fmt.Println("\nChunks:")
	for _, chunk := range tm.Chunks() {
		lo, hi := t.MaxHeight, 0.0
		slopes, ramps := 0, 0
		for _, tile := range chunk.Tiles() {
			h := tile.Heights()
			for _, v := range []float64{h.TopLeft, h.TopRight, h.BottomLeft, h.BottomRight} {
				lo = min(lo, v)
				hi = max(hi, v)
			}
			if tile.IsSlope() {
				slopes++
			}
			if tile.SlopeNeighborMask() != 0 {
				ramps++
			}
		}
		origin := chunk.WorldOrigin()
		fmt.Printf("%s origin (%.1f, %.1f): heights %.1f..%.1f, %d sloped, %d next to slopes\n",
			chunk.Coord(), origin.X, origin.Y, lo, hi, slopes, ramps)
	}

	// Height profile along the X axis through the world origin
	fmt.Println("\nProfile (y = 0):")
	for x := -4; x <= 4; x++ {
		if h, ok := tm.TryGetHeightAt(float64(x), 0); ok {
			fmt.Printf("x=%3d  %.2f\n", x, h)
		}
	}

	fmt.Println("\nMaterials:")
	mm := world.NewMaterialManager()
	if err := mm.LoadMaterialConfig("../" + cfg.Build.MaterialsFile); err != nil {
		log.Printf("Warning: Failed to load material config: %v", err)
		return
	}
	list := mm.ListMaterials()
	keys := make([]string, 0, len(list))
	for key := range list {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		data := list[key]
		fmt.Printf("- %s: %s (letter: '%s', color %v)\n", key, data.Name, data.Letter, mm.GetColor(key))
	}
}
