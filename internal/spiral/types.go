package spiral

import (
	"math"
	"strings"
)

// DefaultPaletteSize is the number of colour slots used when none is given.
const DefaultPaletteSize = 9

// GrowthCutoff is the first point index at which scatter sizes stop growing.
const GrowthCutoff = 15

type Mode int

const (
	ModePlot Mode = iota
	ModeScatter
	ModeScatter3D
)

func (m Mode) String() string {
	switch m {
	case ModePlot:
		return "plot"
	case ModeScatter:
		return "scatter"
	case ModeScatter3D:
		return "scatter3d"
	default:
		return "unknown"
	}
}

// Is3D reports whether points carry a z coordinate.
func (m Mode) Is3D() bool { return m == ModeScatter3D }

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plot":
		return ModePlot, nil
	case "", "scatter":
		return ModeScatter, nil
	case "scatter3d":
		return ModeScatter3D, nil
	}
	return 0, &UnknownModeError{Mode: s}
}

// Params is the spiral configuration shared read-only by every integer of a
// family. RadialModifier is the global modifier: it sets winding tightness and
// is weighted per integer.
type Params struct {
	DegreesBase    float64
	DegreeModifier float64
	Iterations     int
	RadialModifier float64
}

func DefaultParams() Params {
	return Params{
		DegreesBase:    360,
		DegreeModifier: 1,
		Iterations:     1000,
		RadialModifier: 1,
	}
}

// Validate checks the parameters that do not depend on the source integer.
// A zero RadialModifier is left to Synthesize, which reports it per integer.
func (p Params) Validate() error {
	if p.Iterations < 0 {
		return &ParamError{Field: "iterations", Reason: "must not be negative"}
	}
	if p.RadialModifier < 0 {
		return &ParamError{Field: "modifier", Reason: "must not be negative"}
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"degrees", p.DegreesBase},
		{"degree modifier", p.DegreeModifier},
		{"modifier", p.RadialModifier},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParamError{Field: f.name, Reason: "must be finite"}
		}
	}
	if p.DegreesBase <= 0 {
		return &ParamError{Field: "degrees", Reason: "must be positive"}
	}
	if p.DegreeModifier <= 0 {
		return &ParamError{Field: "degree modifier", Reason: "must be positive"}
	}
	return nil
}

type Point struct {
	X, Y, Z float64
}

type Attributes struct {
	Size       float64
	ColorIndex int
}

// Result is one spiral of a family. Theta and Radius hold the untruncated
// curve the points were derived from.
type Result struct {
	SourceValue int
	Index       int
	Mode        Mode
	Theta       []float64
	Radius      []float64
	Points      []Point
	Attributes  []Attributes
}

func (r Result) Len() int { return len(r.Points) }

// Bounds returns the extent of the point set. All values are zero for an
// empty result.
func (r Result) Bounds() (minX, maxX, minY, maxY float64) {
	if len(r.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = r.Points[0].X, r.Points[0].X
	minY, maxY = r.Points[0].Y, r.Points[0].Y
	for _, p := range r.Points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}
