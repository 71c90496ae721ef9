// Package config loads timechart settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

// Config is the root configuration structure.
type Config struct {
	// Theme is either "light" or "dark".
	Theme   string        `mapstructure:"theme"`
	Surface SurfaceConfig `mapstructure:"surface"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Log     LogConfig     `mapstructure:"log"`
}

// SurfaceConfig sizes rendered images and the viewer window.
type SurfaceConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// ChartConfig overrides parts of the theme.
type ChartConfig struct {
	LineWidth       float64 `mapstructure:"line_width"`
	VerticalPadding float64 `mapstructure:"vertical_padding"`
	// HighlightColor is a #rrggbb color. Empty keeps the theme's.
	HighlightColor string `mapstructure:"highlight_color"`
	// HitRadius is how far from an entry, in pixels, the pointer still
	// counts as hovering it.
	HitRadius float64 `mapstructure:"hit_radius"`
}

// LogConfig configures the logger package.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// Path is the log file. Empty logs to stderr.
	Path string `mapstructure:"path"`
}

// Load reads the config file at path, or when path is empty looks for
// timechart.yaml in ~/.config/timechart and the working directory. A
// missing file in the search locations is not an error. Any setting can
// be overridden from the environment, e.g. TIMECHART_CHART_LINE_WIDTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("timechart")
		v.AddConfigPath("$HOME/.config/timechart")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TIMECHART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("theme", "light")
	v.SetDefault("surface.width", 960)
	v.SetDefault("surface.height", 320)
	v.SetDefault("chart.line_width", 1.5)
	v.SetDefault("chart.vertical_padding", 12)
	v.SetDefault("chart.highlight_color", "")
	v.SetDefault("chart.hit_radius", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be 'light' or 'dark', got %q", c.Theme)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface must have a positive size, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if c.Chart.LineWidth <= 0 {
		return fmt.Errorf("chart.line_width must be positive, got %v", c.Chart.LineWidth)
	}
	if c.Chart.VerticalPadding < 0 {
		return fmt.Errorf("chart.vertical_padding must not be negative, got %v", c.Chart.VerticalPadding)
	}
	if c.Chart.HitRadius < 0 {
		return fmt.Errorf("chart.hit_radius must not be negative, got %v", c.Chart.HitRadius)
	}
	if c.Chart.HighlightColor != "" {
		if _, err := parseColor(c.Chart.HighlightColor); err != nil {
			return fmt.Errorf("chart.highlight_color: %w", err)
		}
	}
	return nil
}

// Dark reports whether the dark theme is selected.
func (c *Config) Dark() bool { return c.Theme == "dark" }

// Style returns the chart style described by the configuration.
func (c *Config) Style() (chart.Style, error) {
	s := chart.DefaultStyle()
	if c.Dark() {
		s = chart.DarkStyle()
	}
	s.LineWidth = float32(c.Chart.LineWidth)
	s.VerticalPadding = float32(c.Chart.VerticalPadding)
	if c.Chart.HighlightColor != "" {
		hc, err := parseColor(c.Chart.HighlightColor)
		if err != nil {
			return s, fmt.Errorf("chart.highlight_color: %w", err)
		}
		s.HighlightColor = hc
	}
	return s, nil
}

func parseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
