package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config_*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `terrain:
  seed: 7
  chunk_count_per_axis: 5
build:
  default_material: carpet
  strict_invariants: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.GetSeed())
	assert.Equal(t, 5, cfg.GetChunkCountPerAxis())
	assert.Equal(t, "carpet", cfg.Build.DefaultMaterial)
	assert.True(t, cfg.Build.StrictInvariants)

	// untouched keys keep their defaults
	assert.Equal(t, 0.5, cfg.Terrain.HeightStep)
	assert.Equal(t, 3, cfg.Terrain.Octaves)
	assert.Equal(t, 1200, cfg.GetScreenWidth())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeTempConfig(t, `terrain:
  chunk_count_per_axis: 0
`)
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path = writeTempConfig(t, `terrain:
  height_step: -1
`)
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("does/not/exist.yaml")
	assert.Error(t, err)

	path := writeTempConfig(t, "terrain: [not, a, map]\n")
	_, err = LoadConfig(path)
	assert.Error(t, err)

	assert.Panics(t, func() { MustLoadConfig("does/not/exist.yaml") })
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
