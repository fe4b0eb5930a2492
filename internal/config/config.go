// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/interaction"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file
type Config struct {
	LogLevel         string    `yaml:"logLevel"`
	InitialSelection string    `yaml:"initialSelection"`
	Breathing        Breathing `yaml:"breathing"`
	Palette          Palette   `yaml:"palette"`
	Model            Model     `yaml:"model"`
	Catalog          string    `yaml:"catalog"`
}

// Breathing configures the hover scale animation
type Breathing struct {
	Blend      float64 `yaml:"blend"`
	HoverScale float64 `yaml:"hoverScale"`
}

// Shade is one palette entry with hex colors
type Shade struct {
	Color     string  `yaml:"color"`
	Emissive  string  `yaml:"emissive"`
	Intensity float64 `yaml:"intensity"`
}

// Palette configures the three tints
type Palette struct {
	Base     Shade `yaml:"base"`
	Hover    Shade `yaml:"hover"`
	Selected Shade `yaml:"selected"`
}

// Model places the body in the world
type Model struct {
	Position    [3]float64 `yaml:"position"`
	Scale       [3]float64 `yaml:"scale"`
	RotationDeg [3]float64 `yaml:"rotationDeg"`
}

// Default returns the built-in configuration
func Default() *Config {
	def := feedback.DefaultPalette()
	shade := func(s feedback.Shade) Shade {
		return Shade{
			Color:     feedback.Hex(s.Color),
			Emissive:  feedback.Hex(s.Emissive),
			Intensity: s.EmissiveIntensity,
		}
	}
	return &Config{
		LogLevel: "info",
		Breathing: Breathing{
			Blend:      interaction.DefaultBlend,
			HoverScale: interaction.HoverScale,
		},
		Palette: Palette{
			Base:     shade(def.Base),
			Hover:    shade(def.Hover),
			Selected: shade(def.Selected),
		},
		Model: Model{Scale: [3]float64{1, 1, 1}},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that the viewer cannot recover from
func (c *Config) Validate() error {
	if _, err := anatomy.ParseRegion(c.InitialSelection); err != nil {
		return fmt.Errorf("initialSelection: %w", err)
	}
	if err := c.checkFinite(); err != nil {
		return err
	}
	if c.Breathing.Blend <= 0 || c.Breathing.Blend > 1 {
		return fmt.Errorf("breathing.blend must be in (0, 1], got %v", c.Breathing.Blend)
	}
	if c.Breathing.HoverScale <= 0 {
		return fmt.Errorf("breathing.hoverScale must be positive, got %v", c.Breathing.HoverScale)
	}
	for i, s := range c.Model.Scale {
		if s == 0 {
			return fmt.Errorf("model.scale[%d] must not be zero", i)
		}
	}
	if _, err := c.FeedbackPalette(); err != nil {
		return err
	}
	return nil
}

// checkFinite rejects NaN and infinite numbers anywhere in the file
func (c *Config) checkFinite() error {
	values := map[string]float64{
		"breathing.blend":            c.Breathing.Blend,
		"breathing.hoverScale":       c.Breathing.HoverScale,
		"palette.base.intensity":     c.Palette.Base.Intensity,
		"palette.hover.intensity":    c.Palette.Hover.Intensity,
		"palette.selected.intensity": c.Palette.Selected.Intensity,
	}
	for i := 0; i < 3; i++ {
		values[fmt.Sprintf("model.position[%d]", i)] = c.Model.Position[i]
		values[fmt.Sprintf("model.scale[%d]", i)] = c.Model.Scale[i]
		values[fmt.Sprintf("model.rotationDeg[%d]", i)] = c.Model.RotationDeg[i]
	}
	for field, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", field, v)
		}
	}
	return nil
}

// Selection returns the parsed initial selection
func (c *Config) Selection() anatomy.Region {
	r, _ := anatomy.ParseRegion(c.InitialSelection)
	return r
}

// Transform returns the model's world transform
func (c *Config) Transform() geometry.Transform {
	v := func(a [3]float64) geometry.Vector3 { return geometry.NewVector3(a[0], a[1], a[2]) }
	return geometry.NewTransform(v(c.Model.Position), v(c.Model.Scale), v(c.Model.RotationDeg))
}

// Breath returns a resting breathing animation with the configured parameters
func (c *Config) Breath() *interaction.Breath {
	b := interaction.NewBreath()
	b.Blend = c.Breathing.Blend
	b.Target = c.Breathing.HoverScale
	return b
}

// FeedbackPalette parses the configured colors
func (c *Config) FeedbackPalette() (feedback.Palette, error) {
	var p feedback.Palette
	var err error
	if p.Base, err = c.Palette.Base.parse("palette.base"); err != nil {
		return p, err
	}
	if p.Hover, err = c.Palette.Hover.parse("palette.hover"); err != nil {
		return p, err
	}
	if p.Selected, err = c.Palette.Selected.parse("palette.selected"); err != nil {
		return p, err
	}
	return p, nil
}

func (s Shade) parse(field string) (feedback.Shade, error) {
	col, err := feedback.ParseHex(s.Color)
	if err != nil {
		return feedback.Shade{}, fmt.Errorf("%s.color: %w", field, err)
	}
	emissive, err := feedback.ParseHex(s.Emissive)
	if err != nil {
		return feedback.Shade{}, fmt.Errorf("%s.emissive: %w", field, err)
	}
	if s.Intensity < 0 || s.Intensity > 1 {
		return feedback.Shade{}, fmt.Errorf("%s.intensity must be in [0, 1], got %v", field, s.Intensity)
	}
	return feedback.Shade{Color: col, Emissive: emissive, EmissiveIntensity: s.Intensity}, nil
}
