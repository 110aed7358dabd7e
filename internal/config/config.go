package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Terrain TerrainConfig `yaml:"terrain"`
	Build   BuildConfig   `yaml:"build"`
	Save    SaveConfig    `yaml:"save"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TilePixels   int    `yaml:"tile_pixels"`
}

type TerrainConfig struct {
	Seed              int64   `yaml:"seed"`
	ChunkCountPerAxis int     `yaml:"chunk_count_per_axis"`
	HeightStep        float64 `yaml:"height_step"`
	MaxHeight         float64 `yaml:"max_height"`
	Frequency         float64 `yaml:"frequency"`
	Amplitude         float64 `yaml:"amplitude"`
	Persistence       float64 `yaml:"persistence"`
	Octaves           int     `yaml:"octaves"`
}

type BuildConfig struct {
	DefaultMaterial string `yaml:"default_material"`
	MaterialsFile   string `yaml:"materials_file"`

	// Panic instead of logging when the map's sparse cleanup breaks.
	StrictInvariants bool `yaml:"strict_invariants"`
}

type SaveConfig struct {
	Directory string `yaml:"directory"`
	FileName  string `yaml:"file_name"`
}

// MaterialConfig is the root of the floor material catalog file.
type MaterialConfig struct {
	Materials map[string]MaterialData `yaml:"materials"`
}

type MaterialData struct {
	Name   string `yaml:"name"`
	Color  [3]int `yaml:"color"`
	Letter string `yaml:"letter"`
}

// Default returns a configuration that runs without a config file.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1200,
			ScreenHeight: 800,
			WindowTitle:  "Casino Builder",
			Resizable:    true,
			TilePixels:   12,
		},
		Terrain: TerrainConfig{
			Seed:              42,
			ChunkCountPerAxis: 3,
			HeightStep:        0.5,
			MaxHeight:         4,
			Frequency:         0.08,
			Amplitude:         1,
			Persistence:       0.5,
			Octaves:           3,
		},
		Build: BuildConfig{
			DefaultMaterial: "metal",
			MaterialsFile:   "assets/materials.yaml",
		},
		Save: SaveConfig{
			Directory: "saves",
			FileName:  "session.yaml",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Missing keys keep
// their Default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	t := c.Terrain
	switch {
	case t.ChunkCountPerAxis < 1:
		return fmt.Errorf("terrain.chunk_count_per_axis must be at least 1, got %d: %w", t.ChunkCountPerAxis, ErrInvalidConfig)
	case t.HeightStep <= 0:
		return fmt.Errorf("terrain.height_step must be positive, got %v: %w", t.HeightStep, ErrInvalidConfig)
	case t.MaxHeight < 0:
		return fmt.Errorf("terrain.max_height must not be negative, got %v: %w", t.MaxHeight, ErrInvalidConfig)
	case t.Frequency <= 0:
		return fmt.Errorf("terrain.frequency must be positive, got %v: %w", t.Frequency, ErrInvalidConfig)
	case t.Octaves < 1:
		return fmt.Errorf("terrain.octaves must be at least 1, got %d: %w", t.Octaves, ErrInvalidConfig)
	case c.Display.TilePixels < 1:
		return fmt.Errorf("display.tile_pixels must be at least 1, got %d: %w", c.Display.TilePixels, ErrInvalidConfig)
	case c.Build.DefaultMaterial == "":
		return fmt.Errorf("build.default_material is empty: %w", ErrInvalidConfig)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTilePixels() int {
	return c.Display.TilePixels
}

func (c *Config) GetSeed() int64 {
	return c.Terrain.Seed
}

func (c *Config) GetChunkCountPerAxis() int {
	return c.Terrain.ChunkCountPerAxis
}
