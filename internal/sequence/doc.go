// Package sequence produces the ordered integer sequences that drive a
// spiral family.
//
// Two modes are supported:
//
//   - [ModePrimes]: primes in a half-open range [low, high), found by naive
//     trial division against every candidate divisor up to n/2
//   - [ModeCustom]: a caller supplied sequence, returned unchanged
//
// # Example
//
//	seq, err := sequence.Generate(sequence.ModePrimes, 2, 20, nil)
//	// seq == [2 3 5 7 11 13 17 19]
package sequence
