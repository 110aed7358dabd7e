package terrain

import (
	"fmt"

	"casinobuilder/internal/logging"
)

// Snapshot is the persisted terrain state. Terrain is regenerated from it,
// never stored tile by tile.
type Snapshot struct {
	ChunkCountPerAxis int     `yaml:"chunk_count_per_axis"`
	Seed              int64   `yaml:"seed"`
	Step              float64 `yaml:"step"`
	MaxHeight         float64 `yaml:"max_height"`
	Frequency         float64 `yaml:"frequency"`
	Amplitude         float64 `yaml:"amplitude"`
	Persistence       float64 `yaml:"persistence"`
	Octaves           int     `yaml:"octaves"`
}

// NewSnapshot captures the inputs that fully determine a terrain.
func NewSnapshot(chunkCountPerAxis int, hs HeightSettings) Snapshot {
	return Snapshot{
		ChunkCountPerAxis: chunkCountPerAxis,
		Seed:              hs.Seed,
		Step:              hs.Step,
		MaxHeight:         hs.MaxHeight,
		Frequency:         hs.Frequency,
		Amplitude:         hs.Amplitude,
		Persistence:       hs.Persistence,
		Octaves:           hs.Octaves,
	}
}

// HeightSettings rebuilds the generator settings.
func (s Snapshot) HeightSettings() HeightSettings {
	return HeightSettings{
		Seed:        s.Seed,
		Step:        s.Step,
		MaxHeight:   s.MaxHeight,
		Frequency:   s.Frequency,
		Amplitude:   s.Amplitude,
		Persistence: s.Persistence,
		Octaves:     s.Octaves,
	}
}

// Build creates and generates a terrain manager from the snapshot.
func (s Snapshot) Build(logger logging.Logger) (*TerrainManager, error) {
	return s.BuildWith(nil, logger)
}

// BuildWith is Build with chunk synthesis driven by run.
func (s Snapshot) BuildWith(run ChunkRunner, logger logging.Logger) (*TerrainManager, error) {
	m, err := s.manager(logger)
	if err != nil {
		return nil, err
	}
	if err := m.GenerateWith(run); err != nil {
		return nil, err
	}
	return m, nil
}

func (s Snapshot) manager(logger logging.Logger) (*TerrainManager, error) {
	gen, err := NewHeightGenerator(s.HeightSettings())
	if err != nil {
		return nil, fmt.Errorf("terrain snapshot: %w", err)
	}
	bounds, err := NewTerrainBounds(s.ChunkCountPerAxis)
	if err != nil {
		return nil, fmt.Errorf("terrain snapshot: %w", err)
	}
	return NewTerrainManager(bounds, gen, logger)
}
