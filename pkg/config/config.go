// Package config loads render settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vellum/pkg/layout"
	"vellum/pkg/text"
)

// Config holds the settings for a render run.
type Config struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Text struct {
		// Fixed approximate metrics, used when no font is configured.
		Advance    float64 `yaml:"advance"`
		LineHeight float64 `yaml:"line_height"`
		// Font file for real measurement and for drawing text.
		Font string  `yaml:"font"`
		Size float64 `yaml:"size"`
	} `yaml:"text"`
	Output string `yaml:"output"`
}

// Default returns the built-in settings: a 800x600 viewport, fixed
// 8px/16px text metrics, and out.png.
func Default() Config {
	var c Config
	c.Viewport.Width = 800
	c.Viewport.Height = 600
	c.Text.Advance = layout.DefaultMetrics.Advance
	c.Text.LineHeight = layout.DefaultMetrics.LineHeight
	c.Text.Size = 16
	c.Output = "out.png"
	return c
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Metrics builds the text metrics provider the config asks for: real font
// measurement when a font is configured, fixed metrics otherwise.
func (c Config) Metrics() (layout.TextMetrics, error) {
	if c.Text.Font != "" {
		return text.NewFontMetrics(c.Text.Font, c.Text.Size)
	}
	return layout.FixedMetrics{
		Advance:    c.Text.Advance,
		LineHeight: c.Text.LineHeight,
	}, nil
}
