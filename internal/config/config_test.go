package config

import (
	"os"
	"path/filepath"
	"testing"

	"space-rogue/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SPACEROGUE_CONFIG", "")
	t.Setenv("SPACEROGUE_SEED", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load("")
	require.NoError(t, err)
	want := Default()
	want.Log = LogConfig{Level: "info", Format: "text"}
	assert.Equal(t, want, cfg)
	assert.Equal(t, domain.DefaultVisionRange, cfg.World.VisionRange)
}

func TestLoad_LogFromEnvWithoutFile(t *testing.T) {
	t.Setenv("SPACEROGUE_CONFIG", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)

	t.Run("file wins over env", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
		require.NoError(t, err)
		assert.Equal(t, LogConfig{Level: "warn", Format: "json"}, cfg.Log)
	})
}

func TestLoad_File(t *testing.T) {
	t.Setenv("SPACEROGUE_SEED", "999")

	path := writeConfig(t, `
seed: 42
ticks: 5
log:
  level: debug
  format: json
world:
  width: 30
  height: 12
  mobs: 1
  vision_range: 5
  ship: freighter
  mob_kind: hunter
metrics:
  dump: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed, "file wins over env")
	assert.Equal(t, 5, cfg.Ticks)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, 30, cfg.World.Width)
	assert.Equal(t, 12, cfg.World.Height)
	assert.Equal(t, 1, cfg.World.Mobs)
	assert.Equal(t, 5, cfg.World.VisionRange)
	assert.Equal(t, "freighter", cfg.World.Ship)
	assert.Equal(t, "hunter", cfg.World.MobKind)
	assert.False(t, cfg.Metrics.Dump)
}

func TestLoad_EnvFallbacks(t *testing.T) {
	path := writeConfig(t, "ticks: 3\nlog:\n  level: \"\"\n")
	t.Setenv("SPACEROGUE_CONFIG", path)
	t.Setenv("SPACEROGUE_SEED", "7")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Ticks)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 48, cfg.World.Width, "unset fields keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "ticks: ["))
		assert.Error(t, err)
	})
	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "world:\n  width: 2\n"))
		assert.Error(t, err)
		_, err = Load(writeConfig(t, "ticks: -1\n"))
		assert.Error(t, err)
	})
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 11
	assert.Equal(t, int64(11), cfg.ResolveSeed())

	cfg.Seed = 0
	seed := cfg.ResolveSeed()
	assert.NotZero(t, seed)
	assert.Equal(t, seed, cfg.Seed)
}
