package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pie/internal/raster"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	c, err := cfg.BrushColor()
	require.NoError(t, err)
	assert.Equal(t, raster.Black, c)
	assert.Equal(t, 512, cfg.Window.Viewport)
	assert.Equal(t, 0.5, cfg.Brush.Step)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[brush]
size = 2.5
color = "FF0000ff"

[keys]
picker = "P"

[picker]
command = "zenity-pick --rgba"
timeout = "3s"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Brush.Size)
	assert.Equal(t, 0.5, cfg.Brush.Step, "unset keys keep defaults")
	assert.Equal(t, "P", cfg.Keys.Picker)
	assert.Equal(t, "]", cfg.Keys.Grow)
	assert.Equal(t, "zenity-pick --rgba", cfg.Picker.Command)
	assert.Equal(t, Duration(3*time.Second), cfg.Picker.Timeout)
	assert.Equal(t, 800, cfg.Window.Width)

	c, err := cfg.BrushColor()
	require.NoError(t, err)
	assert.Equal(t, raster.Color{R: 255, A: 255}, c)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"syntax":         "[window\nwidth = 3",
		"bad color":      "[brush]\ncolor = \"red\"",
		"viewport":       "[window]\nviewport = 900",
		"canvas":         "[canvas]\nwidth = 0",
		"negative step":  "[brush]\nstep = -1.0",
		"brush over max": "[brush]\nsize = 10.0\nmax = 5.0",
		"duration":       "[picker]\ntimeout = \"soon\"",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
