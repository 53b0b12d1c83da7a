package fill

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration the grid is missing something the filler needs.
	ErrConfiguration = errors.New("fill: configuration error")

	// ErrInvalidArgument e.g. a slope that is not strictly positive.
	ErrInvalidArgument = errors.New("fill: invalid argument")

	// ErrUnsatisfiableSlope the requested gradient would redirect drainage
	// outside the lakes being treated.
	ErrUnsatisfiableSlope = errors.New("fill: slope cannot be imposed")

	// ErrNonConvergence drainage was still changing when the iteration cap
	// was reached.
	ErrNonConvergence = errors.New("fill: did not converge")
)

// ConfigurationError names the missing grid field.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fill: grid has no %q field", e.Field)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnsatisfiableSlopeError lists the outlets of the lakes being sloped when
// drainage changed.
type UnsatisfiableSlopeError struct {
	Slope   float64
	Outlets []int
}

func (e *UnsatisfiableSlopeError) Error() string {
	return fmt.Sprintf("fill: slope %g redirects drainage around outlets %v", e.Slope, e.Outlets)
}

func (e *UnsatisfiableSlopeError) Unwrap() error { return ErrUnsatisfiableSlope }

// NonConvergenceError records how many locate passes were made.
type NonConvergenceError struct {
	Iterations int
	Remaining  int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("fill: %d depressions remain after %d iterations", e.Remaining, e.Iterations)
}

func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }
