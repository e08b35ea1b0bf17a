package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth  = 240
	DefaultScreenHeight = 320
	DefaultRows         = 7
	DefaultCols         = 5
	DefaultInterval     = 0.02
	DefaultUpdateHigh   = 0.25
	DefaultUpdateLow    = 0.05
)

// Config holds every tunable of the dot matrix animation. Values are merged
// over DefaultConfig when loading from YAML; unknown keys are ignored.
type Config struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// Logical block grid.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Geometry. BlockSize and DotSpacing describe the fine dot lattice a
	// block footprint is computed from; DotSize and SuperDotOffset
	// size and place the four drawn dots around each block center.
	DotSize        int `yaml:"dot_size"`
	DotSpacing     int `yaml:"dot_spacing"`
	BlockSize      int `yaml:"block_size"`
	BlockGapDots   int `yaml:"block_gap_dots"`
	SuperDotOffset int `yaml:"super_dot_offset"`

	BGColor string `yaml:"bg_color"`

	// AnimationInterval is the target seconds between frames.
	AnimationInterval float64 `yaml:"animation_interval"`

	// Per-frame update probability for each dot, by brightness class.
	UpdatePercentageHigh float64 `yaml:"update_percentage_high"`
	UpdatePercentageLow  float64 `yaml:"update_percentage_low"`

	LowBrightnessMin  int `yaml:"low_brightness_min"`
	LowBrightnessMax  int `yaml:"low_brightness_max"`
	HighBrightnessMin int `yaml:"high_brightness_min"`
	HighBrightnessMax int `yaml:"high_brightness_max"`

	// Shapes maps a name to the block ids it highlights. Loading merges
	// user entries over the built-in table.
	Shapes map[string][]int `yaml:"shapes"`

	ShowIDs    bool   `yaml:"show_ids"`
	IDColor    string `yaml:"id_color"`
	IDFontSize int    `yaml:"id_font_size"`

	// Seed for the flicker rng; 0 means time-based.
	Seed int64 `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:          DefaultScreenWidth,
		ScreenHeight:         DefaultScreenHeight,
		Rows:                 DefaultRows,
		Cols:                 DefaultCols,
		DotSize:              12,
		DotSpacing:           6,
		BlockSize:            6,
		BlockGapDots:         2,
		SuperDotOffset:       8,
		BGColor:              "#000000",
		AnimationInterval:    DefaultInterval,
		UpdatePercentageHigh: DefaultUpdateHigh,
		UpdatePercentageLow:  DefaultUpdateLow,
		LowBrightnessMin:     0,
		LowBrightnessMax:     100,
		HighBrightnessMin:    155,
		HighBrightnessMax:    255,
		Shapes:               BuiltinShapes(),
		ShowIDs:              false,
		IDColor:              "#00ff00",
		IDFontSize:           10,
	}
}

// Load reads a YAML config, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the animation cannot run with. Degenerate
// but well-formed geometry (huge offsets, zero-size screens) is allowed.
func (c *Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.UpdatePercentageHigh < 0 || c.UpdatePercentageHigh > 1 {
		return fmt.Errorf("update_percentage_high %v outside [0,1]", c.UpdatePercentageHigh)
	}
	if c.UpdatePercentageLow < 0 || c.UpdatePercentageLow > 1 {
		return fmt.Errorf("update_percentage_low %v outside [0,1]", c.UpdatePercentageLow)
	}
	if c.LowBrightnessMin > c.LowBrightnessMax {
		return fmt.Errorf("low brightness range [%d,%d] inverted", c.LowBrightnessMin, c.LowBrightnessMax)
	}
	if c.HighBrightnessMin > c.HighBrightnessMax {
		return fmt.Errorf("high brightness range [%d,%d] inverted", c.HighBrightnessMin, c.HighBrightnessMax)
	}
	if c.AnimationInterval < 0 {
		return fmt.Errorf("animation_interval must not be negative")
	}
	return nil
}

// Interval returns the frame interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.AnimationInterval * float64(time.Second))
}

// ShapeNames returns the configured shape names sorted alphabetically,
// with "none" always last.
func (c *Config) ShapeNames() []string {
	names := make([]string, 0, len(c.Shapes))
	for name := range c.Shapes {
		if name != "none" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append(names, "none")
}
