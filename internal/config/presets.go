package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {
		Title: "Primes-2-100", Series: "primes", Low: 2, High: 100, PlotType: "scatter",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: 1, Modifier: 1, Iterations: 1000},
	},
	"golden": {
		Title: "Primes-100-150", Series: "primes", Low: 100, High: 150, PlotType: "scatter3d",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: 2 * math.Phi, Modifier: 6 * math.Pi, Iterations: 1000},
	},
	"phi-flat": {
		Title: "Primes-2-60", Series: "primes", Low: 2, High: 60, PlotType: "scatter",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: math.Phi, Modifier: math.Phi, Iterations: 800},
	},
	"tight": {
		Title: "Primes-2-50", Series: "primes", Low: 2, High: 50, PlotType: "scatter",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: 5, Modifier: math.Pi, Iterations: 1500},
	},
	"line": {
		Title: "Primes-2-30", Series: "primes", Low: 2, High: 30, PlotType: "plot",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: 1, Modifier: 1, Iterations: 600},
	},
	"squares": {
		Title: "Squares", Series: "custom", Custom: []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, PlotType: "scatter",
		Spiral: SpiralConfig{Degrees: 360, DegModifier: 1, Modifier: math.E, Iterations: 1000},
	},
}

// GetPreset returns a full configuration for the named preset, with defaults
// filled in for everything the preset does not set. It returns nil for an
// unknown name.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Title = preset.Title
	cfg.Series = preset.Series
	cfg.Low = preset.Low
	cfg.High = preset.High
	cfg.Custom = append([]int(nil), preset.Custom...)
	cfg.PlotType = preset.PlotType
	cfg.Spiral = preset.Spiral
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
