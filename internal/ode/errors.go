package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration.
var (
	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")

	// ErrBadConfig indicates a non-positive dt or duration.
	ErrBadConfig = errors.New("ode: invalid solve configuration")

	// ErrDimensionMismatch indicates x0 does not match the system dimension.
	ErrDimensionMismatch = errors.New("ode: initial state does not match system dimension")
)

// StepError stamps an integration failure with the step it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
