package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timechart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
theme: dark
surface:
  width: 640
chart:
  line_width: 2
  highlight_color: "#ff0000"
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Dark())
	assert.Equal(t, 640, cfg.Surface.Width)
	// Unset values keep their defaults.
	assert.Equal(t, 320, cfg.Surface.Height)
	assert.Equal(t, 8.0, cfg.Chart.HitRadius)
	assert.Equal(t, "debug", cfg.Log.Level)

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.True(t, style.Dark)
	assert.Equal(t, float32(2), style.LineWidth)
	assert.Equal(t, float32(12), style.VerticalPadding)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, style.HighlightColor)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TIMECHART_CHART_LINE_WIDTH", "3.5")
	t.Setenv("TIMECHART_THEME", "dark")
	cfg, err := Load(writeConfig(t, "theme: light\n"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Chart.LineWidth)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"theme":      "theme: sepia\n",
		"size":       "surface:\n  width: 0\n",
		"line width": "chart:\n  line_width: -1\n",
		"padding":    "chart:\n  vertical_padding: -1\n",
		"radius":     "chart:\n  hit_radius: -2\n",
		"color":      "chart:\n  highlight_color: orange\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestStyleLight(t *testing.T) {
	cfg := &Config{Theme: "light", Surface: SurfaceConfig{Width: 1, Height: 1}, Chart: ChartConfig{LineWidth: 1}}
	require.NoError(t, cfg.Validate())
	style, err := cfg.Style()
	require.NoError(t, err)
	assert.False(t, style.Dark)
	assert.Equal(t, float32(1), style.LineWidth)
}
