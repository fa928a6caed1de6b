// Package spiral synthesizes Fermat spiral point-sets and their per-point
// visual attributes from a sequence of integers.
//
// The package defines the value types shared by every consumer:
//
//   - [Params]: read-only spiral configuration shared across a family
//   - [Point]: truncated Cartesian coordinate, with z for 3D families
//   - [Attributes]: marker size and palette slot for a point
//   - [Result]: one spiral, tagged with the integer that produced it
//
// # Example
//
//	params := spiral.DefaultParams()
//	for res, err := range spiral.Family(seq, params, spiral.ModeScatter, 9) {
//	    if err != nil {
//	        return err
//	    }
//	    render(res)
//	}
//
// # Thread Safety
//
// [Synthesize] is a pure function; results for different integers may be
// computed concurrently. [SynthesizeAll] does this with a bounded worker
// group while preserving sequence order.
package spiral
