package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/sequence"
	"github.com/san-kum/spirals/internal/spiral"
)

const (
	DefaultLow         = 2
	DefaultHigh        = 100
	DefaultDegrees     = 360.0
	DefaultModifier    = 1.0
	DefaultDegModifier = 1.0
	DefaultIterations  = 1000
	DefaultPaletteSize = spiral.DefaultPaletteSize
	DefaultOutputDir   = "output"
)

type Config struct {
	Title           string        `yaml:"title"`
	OutputDir       string        `yaml:"output_dir"`
	Series          string        `yaml:"series"`
	Low             int           `yaml:"low"`
	High            int           `yaml:"high"`
	Custom          []int         `yaml:"custom,omitempty"`
	PlotType        string        `yaml:"plot_type"`
	Spiral          SpiralConfig  `yaml:"spiral"`
	Palette         PaletteConfig `yaml:"palette"`
	SaveFigure      bool          `yaml:"save_figure"`
	RequireNonEmpty bool          `yaml:"require_non_empty"`
	Workers         int           `yaml:"workers"`
}

type SpiralConfig struct {
	Degrees     float64 `yaml:"degrees"`
	DegModifier float64 `yaml:"deg_modifier"`
	Modifier    float64 `yaml:"modifier"`
	Iterations  int     `yaml:"iterations"`
}

type PaletteConfig struct {
	Random bool  `yaml:"random"`
	Seed   int64 `yaml:"seed"`
	Size   int   `yaml:"size"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:     "Primes",
		OutputDir: DefaultOutputDir,
		Series:    "primes",
		Low:       DefaultLow,
		High:      DefaultHigh,
		PlotType:  "scatter",
		Spiral: SpiralConfig{
			Degrees:     DefaultDegrees,
			DegModifier: DefaultDegModifier,
			Modifier:    DefaultModifier,
			Iterations:  DefaultIterations,
		},
		Palette: PaletteConfig{
			Size: DefaultPaletteSize,
		},
		SaveFigure: true,
		Workers:    1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// Validate rejects configurations the pipeline cannot run.
func (c *Config) Validate() error {
	mode, err := sequence.ParseMode(c.Series)
	if err != nil {
		return err
	}
	if mode == sequence.ModePrimes && c.Low >= c.High {
		return &sequence.InvalidRangeError{Low: c.Low, High: c.High}
	}
	if mode == sequence.ModeCustom && len(c.Custom) == 0 {
		return fmt.Errorf("custom series requires at least one value")
	}
	if _, err := spiral.ParseMode(c.PlotType); err != nil {
		return err
	}
	if c.Spiral.Modifier <= 0 {
		return fmt.Errorf("modifier must be positive, got %g", c.Spiral.Modifier)
	}
	if math.IsNaN(c.Spiral.Modifier) || math.IsNaN(c.Spiral.DegModifier) || math.IsNaN(c.Spiral.Degrees) {
		return fmt.Errorf("spiral parameters must be numbers")
	}
	if c.Spiral.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Spiral.Iterations)
	}
	if c.Palette.Size < 1 {
		return fmt.Errorf("palette size must be at least 1, got %d", c.Palette.Size)
	}
	if !c.Palette.Random && c.Palette.Size != palette.FixedSize {
		return fmt.Errorf("the fixed palette has %d colours, got palette size %d (use a random palette for other sizes)",
			palette.FixedSize, c.Palette.Size)
	}
	return c.Params().Validate()
}

// Params converts the spiral section into synthesis parameters.
func (c *Config) Params() spiral.Params {
	return spiral.Params{
		DegreesBase:    c.Spiral.Degrees,
		DegreeModifier: c.Spiral.DegModifier,
		Iterations:     c.Spiral.Iterations,
		RadialModifier: c.Spiral.Modifier,
	}
}

func (c *Config) SequenceMode() (sequence.Mode, error) {
	return sequence.ParseMode(c.Series)
}

func (c *Config) Mode() (spiral.Mode, error) {
	return spiral.ParseMode(c.PlotType)
}

// RunName is the directory name of a run, e.g. "Primes-100-150-scatter3d".
func (c *Config) RunName() string {
	return c.Title + "-" + c.PlotType
}
