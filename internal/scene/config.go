package scene

import (
	"fmt"
	"os"

	"github.com/aretw0/mosaic/pkg/screen"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk description of a scene.
type Config struct {
	Name       string         `yaml:"name"`
	Grid       [][]int        `yaml:"grid"`
	Range      *RangeConfig   `yaml:"range,omitempty"`
	Palette    map[int]string `yaml:"palette,omitempty"`
	Glyph      string         `yaml:"glyph,omitempty"`
	Terminator *string        `yaml:"terminator,omitempty"`
	Steps      []Step         `yaml:"steps,omitempty"`
}

// RangeConfig holds the x and y bounds as [start, end] pairs.
type RangeConfig struct {
	X []int `yaml:"x"`
	Y []int `yaml:"y"`
}

// Step is one pipeline stage. Args are decoded according to Type.
type Step struct {
	Type string         `yaml:"type"`
	Args map[string]any `yaml:"args,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ScreenRange returns the configured range, or the grid bounds when none is set.
func (c *Config) ScreenRange() (screen.Range, error) {
	if c.Range == nil {
		width := 0
		if len(c.Grid) > 0 {
			width = len(c.Grid[0])
		}
		return screen.Rect(0, width, 0, len(c.Grid)), nil
	}
	x, err := span("x", c.Range.X)
	if err != nil {
		return screen.Range{}, err
	}
	y, err := span("y", c.Range.Y)
	if err != nil {
		return screen.Range{}, err
	}
	return screen.Range{X: x, Y: y}, nil
}

// RowTerminator returns the configured terminator or the screen default.
func (c *Config) RowTerminator() string {
	if c.Terminator != nil {
		return *c.Terminator
	}
	return screen.ResetMarker + "\n"
}

func span(axis string, bounds []int) (screen.Span, error) {
	if len(bounds) != 2 {
		return screen.Span{}, fmt.Errorf("%s: want [start, end], got %v: %w", axis, bounds, ErrInvalidRange)
	}
	return screen.Span{Start: bounds[0], End: bounds[1]}, nil
}
