package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "3003", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.ReadTimeout)
	assert.Equal(t, 1e-6, cfg.Geometry.Epsilon)
	assert.Equal(t, 10.0, cfg.Geometry.MinWallLength)
	assert.Equal(t, 50.0, cfg.Geometry.MaxJoinDistance)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", "")
	t.Setenv("PORT", "8080")
	t.Setenv("WRITE_TIMEOUT", "30")
	t.Setenv("GEOMETRY_EPSILON", "0.001")
	t.Setenv("MIN_WALL_SPACING", "12.5")
	t.Setenv("SNAP_TOLERANCE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30, cfg.WriteTimeout)
	assert.Equal(t, 0.001, cfg.Geometry.Epsilon)
	assert.Equal(t, 12.5, cfg.Geometry.MinWallSpacing)
	assert.Equal(t, 10.0, cfg.Geometry.SnapTolerance, "bad values keep the default")
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "4000"
env: production
geometry:
  epsilon: 0.0001
  min_wall_length: 25
`), 0o644))

	t.Setenv("PLANNER_CONFIG", path)
	t.Setenv("PORT", "")
	t.Setenv("MIN_WALL_LENGTH", "30")

	cfg := Load()
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 0.0001, cfg.Geometry.Epsilon)
	assert.Equal(t, 30.0, cfg.Geometry.MinWallLength)
	assert.Equal(t, 10000.0, cfg.Geometry.MaxWallLength, "unset keys keep the default")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geometry: [1, 2"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoad_BadFileFallsBack(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "3003", cfg.Port)
}
