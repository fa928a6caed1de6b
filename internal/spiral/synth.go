package spiral

import "math"

// Synthesize derives the spiral for source integer p at position idx of its
// sequence.
//
// The sweep is proportional to p: Iterations angles are spread evenly over
// [0, radians(DegreesBase*p*DegreeModifier)] and each radius is the square of
// its angle. Coordinates are truncated toward zero, never rounded, so points
// snap onto an integer grid the same way for every consumer.
func Synthesize(p, idx int, params Params, mode Mode, paletteSize int) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	if paletteSize < 1 {
		return Result{}, &ParamError{Field: "palette size", Reason: "must be at least 1"}
	}

	radial := params.RadialModifier * float64(p)
	if radial == 0 {
		return Result{}, &DegenerateModifierError{Value: p, Modifier: params.RadialModifier}
	}

	degrees := params.DegreesBase * float64(p)
	theta := linspaceRadians(degrees*params.DegreeModifier, params.Iterations)

	res := Result{
		SourceValue: p,
		Index:       idx,
		Mode:        mode,
		Theta:       theta,
		Radius:      make([]float64, len(theta)),
		Points:      make([]Point, len(theta)),
		Attributes:  make([]Attributes, len(theta)),
	}

	for i, th := range theta {
		r := th * th
		res.Radius[i] = r

		pt := Point{
			X: math.Trunc(r * math.Cos(th)),
			Y: math.Trunc(r * math.Sin(th)),
		}
		if mode.Is3D() {
			pt.Z = float64(i) / 100
		}
		res.Points[i] = pt

		size := math.Floor(float64(i) / radial * float64(p))
		if mode == ModeScatter {
			size *= sizeGrowth(i)
		}
		res.Attributes[i] = Attributes{
			Size:       size,
			ColorIndex: colorIndex(p, i, params.RadialModifier, paletteSize),
		}
	}

	return res, nil
}

// linspaceRadians spreads n angles evenly over [0, stopDeg] degrees, endpoint
// included, and returns them in radians.
func linspaceRadians(stopDeg float64, n int) []float64 {
	theta := make([]float64, n)
	if n < 2 {
		return theta
	}

	step := stopDeg / float64(n-1)
	for i := range theta {
		theta[i] = radians(float64(i) * step)
	}
	theta[n-1] = radians(stopDeg)
	return theta
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// sizeGrowth is the scatter size multiplier. It stops changing at
// GrowthCutoff so late points do not grow without bound.
func sizeGrowth(i int) float64 {
	if i >= GrowthCutoff {
		i = GrowthCutoff - 1
	}
	return float64(i) + 1/float64(i+1)
}

func colorIndex(p, i int, modifier float64, paletteSize int) int {
	v := int(math.Trunc(float64(p) * float64(i) * modifier))
	v %= paletteSize
	if v < 0 {
		v += paletteSize
	}
	return v
}
