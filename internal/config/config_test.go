package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/spirals/internal/sequence"
	"github.com/san-kum/spirals/internal/spiral"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Series != "primes" {
		t.Errorf("expected series primes, got %s", cfg.Series)
	}
	if cfg.Palette.Size != 9 {
		t.Errorf("expected palette size 9, got %d", cfg.Palette.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spirals.yaml")

	cfg := DefaultConfig()
	cfg.Title = "Roundtrip"
	cfg.Low, cfg.High = 100, 150
	cfg.Spiral.Modifier = 6 * math.Pi
	cfg.Palette.Random = true
	cfg.Palette.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "title: Partial\nlow: 10\nhigh: 40\nspiral:\n  modifier: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Low != 10 || cfg.High != 40 || cfg.Spiral.Modifier != 2.5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Spiral.Iterations != DefaultIterations || cfg.PlotType != "scatter" || cfg.Palette.Size != DefaultPaletteSize {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted range", func(c *Config) { c.Low, c.High = 50, 10 }},
		{"unknown series", func(c *Config) { c.Series = "fibonacci" }},
		{"empty custom", func(c *Config) { c.Series = "custom"; c.Custom = nil }},
		{"unknown plot type", func(c *Config) { c.PlotType = "scatter4d" }},
		{"zero modifier", func(c *Config) { c.Spiral.Modifier = 0 }},
		{"nan degrees", func(c *Config) { c.Spiral.Degrees = math.NaN() }},
		{"negative iterations", func(c *Config) { c.Spiral.Iterations = -5 }},
		{"empty palette", func(c *Config) { c.Palette.Size = 0 }},
		{"resized fixed palette", func(c *Config) { c.Palette.Size = 12 }},
		{"zero degrees", func(c *Config) { c.Spiral.Degrees = 0 }},
		{"negative degree modifier", func(c *Config) { c.Spiral.DegModifier = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParamsAndModes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlotType = "scatter3d"
	cfg.Spiral = SpiralConfig{Degrees: 720, DegModifier: 2, Modifier: 3, Iterations: 50}

	want := spiral.Params{DegreesBase: 720, DegreeModifier: 2, Iterations: 50, RadialModifier: 3}
	if got := cfg.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	mode, err := cfg.Mode()
	if err != nil || mode != spiral.ModeScatter3D {
		t.Errorf("Mode() = %v, %v", mode, err)
	}

	seqMode, err := cfg.SequenceMode()
	if err != nil || seqMode != sequence.ModePrimes {
		t.Errorf("SequenceMode() = %v, %v", seqMode, err)
	}

	if cfg.RunName() != "Primes-scatter3d" {
		t.Errorf("RunName() = %s", cfg.RunName())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("golden")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Low != 100 || cfg.High != 150 {
		t.Errorf("expected range [100, 150), got [%d, %d)", cfg.Low, cfg.High)
	}
	if cfg.Spiral.Modifier != 6*math.Pi {
		t.Errorf("expected modifier 6π, got %f", cfg.Spiral.Modifier)
	}
	if cfg.OutputDir != DefaultOutputDir || cfg.Palette.Size != DefaultPaletteSize {
		t.Error("preset should inherit defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_Isolated(t *testing.T) {
	cfg := GetPreset("squares")
	cfg.Custom[0] = 99
	if Presets["squares"].Custom[0] != 1 {
		t.Error("modifying a preset copy changed the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
