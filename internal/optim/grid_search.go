// Package optim searches spiral parameter grids for the combination that
// scores best on a summary metric.
package optim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/spirals/internal/spiral"
)

// Evaluate synthesizes with the given parameter values and returns metric
// values by name.
type Evaluate func(ctx context.Context, params map[string]float64) (map[string]float64, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	maximize   bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Maximize makes higher metric values win. The default is to minimize.
func (g *GridSearch) Maximize() *GridSearch {
	g.maximize = true
	return g
}

// Trial is one evaluated grid point.
type Trial struct {
	Params map[string]float64
	Score  float64
}

func (g *GridSearch) Search(ctx context.Context, evaluate Evaluate, metricName string) (Trial, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Trial{}, nil, fmt.Errorf("%d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	var trials []Trial
	if err := g.searchRecursive(ctx, 0, map[string]float64{}, evaluate, metricName, &trials); err != nil {
		return Trial{}, nil, err
	}
	if len(trials) == 0 {
		return Trial{}, nil, fmt.Errorf("empty grid")
	}

	best := trials[0]
	for _, t := range trials[1:] {
		if g.better(t.Score, best.Score) {
			best = t
		}
	}
	return best, trials, nil
}

func (g *GridSearch) better(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	if g.maximize {
		return a > b
	}
	return a < b
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	evaluate Evaluate,
	metricName string,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		values, err := evaluate(ctx, current)
		if err != nil {
			return err
		}
		score, ok := values[metricName]
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}
		*trials = append(*trials, Trial{Params: current, Score: score})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, evaluate, metricName, trials); err != nil {
			return err
		}
	}
	return nil
}

// Parameter names understood by Apply.
const (
	ParamDegrees     = "degrees"
	ParamDegModifier = "deg_modifier"
	ParamModifier    = "modifier"
	ParamIterations  = "iterations"
)

// Apply overrides fields of base by parameter name.
func Apply(base spiral.Params, values map[string]float64) (spiral.Params, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := values[name]
		switch name {
		case ParamDegrees:
			base.DegreesBase = v
		case ParamDegModifier:
			base.DegreeModifier = v
		case ParamModifier:
			base.RadialModifier = v
		case ParamIterations:
			base.Iterations = int(v)
		default:
			return spiral.Params{}, fmt.Errorf("unknown parameter: %s", name)
		}
	}
	return base, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
