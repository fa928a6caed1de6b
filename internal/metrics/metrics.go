// Package metrics summarises spiral families. Metric values describe the
// geometry of what was generated; the Recorder exports run counters in the
// Prometheus text format.
package metrics

import "github.com/san-kum/spirals/internal/spiral"

// Metric accumulates a single summary value over the results of a family.
type Metric interface {
	Name() string
	Observe(res spiral.Result)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported for every run.
func Defaults(paletteSize int) []Metric {
	return []Metric{
		NewMaxRadius(),
		NewMeanSize(),
		NewColorBalance(paletteSize),
	}
}

// Summary collects the current values of ms by name.
func Summary(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
