package spiral

import "iter"

// Family lazily synthesizes one Result per integer of seq, in order. The
// sequence is finite and may be ranged over again to restart it. Iteration
// stops after the first error, which is yielded wrapped in a SynthesisError.
func Family(seq []int, params Params, mode Mode, paletteSize int) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		for idx, p := range seq {
			res, err := Synthesize(p, idx, params, mode, paletteSize)
			if err != nil {
				yield(Result{}, &SynthesisError{Index: idx, Value: p, Wrapped: err})
				return
			}
			if !yield(res, nil) {
				return
			}
		}
	}
}
