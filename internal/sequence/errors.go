package sequence

import "fmt"

// InvalidRangeError is returned in primes mode when the range is empty.
type InvalidRangeError struct {
	Low  int
	High int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("sequence: invalid range [%d, %d): low must be below high", e.Low, e.High)
}

// UnknownModeError is returned for a mode name that is not recognised.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("sequence: unknown mode %q (available: primes, custom)", e.Mode)
}
