package spiral

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SynthesizeAll computes the whole family with at most workers concurrent
// syntheses. The returned slice is in sequence order. The first error cancels
// the remaining work and is returned.
func SynthesizeAll(ctx context.Context, seq []int, params Params, mode Mode, paletteSize, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(seq))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range seq {
		idx, value := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Synthesize(value, idx, params, mode, paletteSize)
			if err != nil {
				return &SynthesisError{Index: idx, Value: value, Wrapped: err}
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
