package terrain

import (
	"fmt"
	"math"
)

// HeightSampler produces the height at an integer lattice corner.
type HeightSampler interface {
	GetHeight(worldX, worldY int) float64
}

// HeightSettings parameterizes the height field.
type HeightSettings struct {
	Seed        int64
	Step        float64 // heights are multiples of Step
	MaxHeight   float64
	Frequency   float64
	Amplitude   float64
	Persistence float64
	Octaves     int
}

// DefaultHeightSettings returns gentle rolling terrain quantized to half units.
func DefaultHeightSettings(seed int64) HeightSettings {
	return HeightSettings{
		Seed:        seed,
		Step:        0.5,
		MaxHeight:   4,
		Frequency:   0.08,
		Amplitude:   1,
		Persistence: 0.5,
		Octaves:     3,
	}
}

// Validate reports the first unusable field.
func (s HeightSettings) Validate() error {
	switch {
	case !isFinite(s.Step) || s.Step <= 0:
		return fmt.Errorf("height step %v must be positive: %w", s.Step, ErrInvalidArgument)
	case !isFinite(s.MaxHeight) || s.MaxHeight < 0:
		return fmt.Errorf("max height %v must be non-negative: %w", s.MaxHeight, ErrInvalidArgument)
	case !isFinite(s.Frequency) || s.Frequency <= 0:
		return fmt.Errorf("frequency %v must be positive: %w", s.Frequency, ErrInvalidArgument)
	case s.Octaves < 1:
		return fmt.Errorf("octaves %d must be at least 1: %w", s.Octaves, ErrInvalidArgument)
	}
	return nil
}

// HeightGenerator is a pure function of (seed, worldX, worldY).
type HeightGenerator struct {
	noise    *ValueNoise
	settings HeightSettings
}

// NewHeightGenerator validates the settings and seeds the noise source.
func NewHeightGenerator(settings HeightSettings) (*HeightGenerator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &HeightGenerator{
		noise:    NewValueNoise(settings.Seed),
		settings: settings,
	}, nil
}

func (g *HeightGenerator) Seed() int64 { return g.settings.Seed }
func (g *HeightGenerator) Settings() HeightSettings { return g.settings }

// GetHeight samples the octave noise at a lattice corner and quantizes it.
func (g *HeightGenerator) GetHeight(worldX, worldY int) float64 {
	s := g.settings
	v := g.noise.SampleOctaves(float64(worldX), float64(worldY), s.Octaves, s.Frequency, s.Amplitude, s.Persistence)
	return Quantize(v*s.MaxHeight, s.Step)
}

// Quantize rounds v to the nearest multiple of step.
func Quantize(v, step float64) float64 {
	return math.Round(v/step) * step
}
