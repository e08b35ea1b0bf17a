package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rows*cfg.Cols != 35 {
		t.Errorf("expected 35 blocks in default grid, got %d", cfg.Rows*cfg.Cols)
	}
	if cfg.Interval() != 20*time.Millisecond {
		t.Errorf("expected 20ms interval, got %v", cfg.Interval())
	}
	if len(cfg.Shapes["cross"]) != 7 {
		t.Errorf("expected 7 blocks in cross, got %d", len(cfg.Shapes["cross"]))
	}
	if len(cfg.Shapes["none"]) != 0 {
		t.Errorf("shape none must be empty, got %v", cfg.Shapes["none"])
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := `
animation_interval: 0.05
update_percentage_high: 0.5
shapes:
  diamond: [7, 11, 13, 17]
unknown_key: ignored
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AnimationInterval != 0.05 {
		t.Errorf("override lost: interval = %v", cfg.AnimationInterval)
	}
	if cfg.UpdatePercentageHigh != 0.5 {
		t.Errorf("override lost: update high = %v", cfg.UpdatePercentageHigh)
	}
	// Untouched keys keep their defaults.
	if cfg.ScreenWidth != DefaultScreenWidth {
		t.Errorf("default lost: screen width = %d", cfg.ScreenWidth)
	}
	if cfg.UpdatePercentageLow != DefaultUpdateLow {
		t.Errorf("default lost: update low = %v", cfg.UpdatePercentageLow)
	}
	// User shapes extend the built-in table.
	if len(cfg.Shapes["diamond"]) != 4 {
		t.Errorf("user shape not merged: %v", cfg.Shapes["diamond"])
	}
	if len(cfg.Shapes["circle"]) != 11 {
		t.Errorf("built-in shape lost: %v", cfg.Shapes["circle"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	orig := DefaultConfig()
	orig.Seed = 99
	orig.ShowIDs = true

	if err := Save(path, orig); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 99 || !cfg.ShowIDs {
		t.Errorf("round trip lost values: seed=%d show_ids=%v", cfg.Seed, cfg.ShowIDs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero rows", func(c *Config) { c.Rows = 0 }, false},
		{"zero cols", func(c *Config) { c.Cols = 0 }, false},
		{"high fraction above 1", func(c *Config) { c.UpdatePercentageHigh = 1.5 }, false},
		{"low fraction negative", func(c *Config) { c.UpdatePercentageLow = -0.1 }, false},
		{"inverted low range", func(c *Config) { c.LowBrightnessMin = 200; c.LowBrightnessMax = 100 }, false},
		{"inverted high range", func(c *Config) { c.HighBrightnessMin = 255; c.HighBrightnessMax = 155 }, false},
		{"negative interval", func(c *Config) { c.AnimationInterval = -0.01 }, false},
		{"boundary fractions", func(c *Config) { c.UpdatePercentageHigh = 1.0; c.UpdatePercentageLow = 0.0 }, true},
		{"degenerate geometry allowed", func(c *Config) { c.SuperDotOffset = 10000; c.ScreenWidth = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestShapeNames(t *testing.T) {
	cfg := DefaultConfig()
	names := cfg.ShapeNames()

	if len(names) != len(cfg.Shapes) {
		t.Fatalf("expected %d names, got %d", len(cfg.Shapes), len(names))
	}
	if names[len(names)-1] != "none" {
		t.Errorf("none must sort last, got %v", names)
	}
	for i := 1; i < len(names)-1; i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
			break
		}
	}
}

func TestBuiltinShapes_ValidIDs(t *testing.T) {
	cfg := DefaultConfig()
	max := cfg.Rows*cfg.Cols - 1
	for name, ids := range cfg.Shapes {
		for _, id := range ids {
			if id < 0 || id > max {
				t.Errorf("shape %s references block %d outside default grid", name, id)
			}
		}
	}
}
