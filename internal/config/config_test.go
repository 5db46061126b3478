package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[display]
output = "table"
show_gaps = true

[order]
file = "/tmp/order.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Display.Output)
	assert.True(t, cfg.Display.ShowGaps)
	assert.True(t, cfg.Display.Color, "unset keys keep defaults")
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, "/tmp/order.txt", cfg.Order.File)
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display\noutput = "), 0o600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Display.ChartWidth = 120
	cfg.General.LogFile = "/var/log/grapher.log"

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "go-log-grapher", "config.toml"), ConfigPath())
}
