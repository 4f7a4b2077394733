// Package config provides configuration loading and management.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/user/codesnap/pkg/orchestrator"
	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
)

// Config represents the render configuration. The same keys are accepted in
// the YAML defaults file and in the "config" object of the JSON input.
type Config struct {
	// Output
	SnapshotDir string `yaml:"snapshot_dir" json:"snapshot_dir"`
	OutputPath  string `yaml:"output_path" json:"output_path"`
	Clipboard   bool   `yaml:"clipboard" json:"clipboard"`

	// Layout
	Scale       float64 `yaml:"scale" json:"scale"`
	Padding     float64 `yaml:"padding" json:"padding"`
	LineHeight  float64 `yaml:"line_height" json:"line_height"`
	FontSize    float64 `yaml:"font_size" json:"font_size"`
	LineNumbers bool    `yaml:"line_numbers" json:"line_numbers"`
	StartLine   int     `yaml:"start_line" json:"start_line"`
	FontPath    string  `yaml:"font_path" json:"font_path"`

	// Style
	Background      string  `yaml:"background" json:"background"`
	Foreground      string  `yaml:"foreground" json:"foreground"`
	LineNumberColor string  `yaml:"line_number_color" json:"line_number_color"`
	OuterBackground string  `yaml:"outer_background" json:"outer_background"`
	BorderRadius    float64 `yaml:"border_radius" json:"border_radius"`
	Decorations     bool    `yaml:"decorations" json:"decorations"`

	// Shadow
	Shadow        bool    `yaml:"shadow" json:"shadow"`
	ShadowBlur    float64 `yaml:"shadow_blur" json:"shadow_blur"`
	ShadowOpacity float64 `yaml:"shadow_opacity" json:"shadow_opacity"`
	ShadowOffsetX float64 `yaml:"shadow_offset_x" json:"shadow_offset_x"`
	ShadowOffsetY float64 `yaml:"shadow_offset_y" json:"shadow_offset_y"`
	OuterPadding  float64 `yaml:"outer_padding" json:"outer_padding"`

	// Processing (file and flags only)
	Workers  int    `yaml:"workers" json:"-"`
	Debug    bool   `yaml:"debug" json:"-"`
	DebugDir string `yaml:"debug_dir" json:"-"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Clipboard: true,

		Scale:      pipeline.DefaultRenderScale,
		Padding:    80,
		LineHeight: 28,
		FontSize:   20,
		StartLine:  1,

		Background:      "#282c34",
		Foreground:      "#abb2bf",
		LineNumberColor: "#5c6370",
		OuterBackground: "#ffffff",
		BorderRadius:    5,

		Shadow:        true,
		ShadowBlur:    20,
		ShadowOpacity: 0.5,
		ShadowOffsetY: 8,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads a YAML file over Defaults.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Input is the JSON document read from stdin or --input.
type Input struct {
	Lines  []pipeline.Line `json:"lines"`
	Config Config          `json:"config"`
}

// ParseInput decodes a JSON input document. Keys absent from its "config"
// object keep their values from base.
func ParseInput(data []byte, base Config) (pipeline.Document, Config, error) {
	in := Input{Config: base}
	if err := json.Unmarshal(data, &in); err != nil {
		return pipeline.Document{}, base, err
	}
	return pipeline.Document{Lines: in.Lines}, in.Config, nil
}

// ParseColor parses a hex color string. Malformed channels become 255.
func ParseColor(hex string) color.NRGBA {
	return pipeline.ParseHexColor(hex)
}

// withMetricDefaults replaces a non-positive font size or line height with
// its default. Glyphs cannot be measured or drawn at size zero.
func (c Config) withMetricDefaults() Config {
	d := Defaults()
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.LineHeight <= 0 {
		c.LineHeight = d.LineHeight
	}
	return c
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// outputPath must already be resolved.
func (c Config) ToOrchestratorConfig(doc pipeline.Document, outputPath string) orchestrator.Config {
	c = c.withMetricDefaults()
	return orchestrator.Config{
		Document:   doc,
		OutputPath: outputPath,

		FontSize:    c.FontSize,
		LineHeight:  c.LineHeight,
		Padding:     c.Padding,
		Scale:       c.Scale,
		LineNumbers: c.LineNumbers,
		StartLine:   c.StartLine,

		Background:      ParseColor(c.Background),
		Foreground:      ParseColor(c.Foreground),
		LineNumberColor: ParseColor(c.LineNumberColor),
		OuterBackground: ParseColor(c.OuterBackground),
		BorderRadius:    c.BorderRadius,
		Decorations:     c.Decorations,

		Shadow:        c.Shadow,
		ShadowBlur:    c.ShadowBlur,
		ShadowOpacity: c.ShadowOpacity,
		ShadowOffsetX: c.ShadowOffsetX,
		ShadowOffsetY: c.ShadowOffsetY,
		OuterPadding:  c.OuterPadding,

		Clipboard: c.Clipboard,
	}
}
