package spiral

import "fmt"

// DegenerateModifierError is returned when the per-integer radial modifier is
// zero, which would divide by zero in the size formula.
type DegenerateModifierError struct {
	Value    int
	Modifier float64
}

func (e *DegenerateModifierError) Error() string {
	return fmt.Sprintf("spiral: degenerate radial modifier for %d (modifier=%g)", e.Value, e.Modifier)
}

// ParamError reports a parameter outside its valid domain.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("spiral: invalid %s: %s", e.Field, e.Reason)
}

// UnknownModeError is returned by ParseMode for an unrecognised plot type.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("spiral: unknown plot type %q (available: plot, scatter, scatter3d)", e.Mode)
}

// SynthesisError wraps an error with the position of the integer that failed.
type SynthesisError struct {
	Index   int
	Value   int
	Wrapped error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("integer %d (position %d): %v", e.Value, e.Index, e.Wrapped)
}

func (e *SynthesisError) Unwrap() error {
	return e.Wrapped
}
