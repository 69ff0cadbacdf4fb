package ode

import (
	"context"
	"fmt"
	"math"
)

// Solve integrates sys from x0 for cfg.Duration using a fixed timestep
// (or the stepper's adaptive mode when cfg.Adaptive is set). The initial
// state is recorded as the first sample.
func Solve(ctx context.Context, sys System, stepper Stepper, x0 State, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: dt=%f duration=%f", ErrBadConfig, cfg.Dt, cfg.Duration)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance must be positive for adaptive stepping", ErrBadConfig)
	}
	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), sys.Dim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:  make([]float64, 0, steps+1),
		States: make([]State, 0, steps+1),
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	result.Times = append(result.Times, t)
	result.States = append(result.States, x.Clone())

	initialEnergy := energyOf(sys, x)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var newX State
		if cfg.Adaptive {
			if adaptive, ok := stepper.(AdaptiveStepper); ok {
				var err error
				newX, dt, err = adaptive.StepAdaptive(sys, x, t, dt, cfg.Tolerance)
				if err != nil {
					return result, &StepError{Step: i, Time: t, Wrapped: err}
				}
			} else {
				newX = stepper.Step(sys, x, t, dt)
			}
		} else {
			newX = stepper.Step(sys, x, t, dt)
		}

		if cfg.ValidateState && !newX.IsValid() {
			return result, &StepError{Step: i, Time: t, Wrapped: ErrInvalidState}
		}

		x = newX
		t += dt
		result.StepsTaken++

		result.Times = append(result.Times, t)
		result.States = append(result.States, x.Clone())
	}

	finalEnergy := energyOf(sys, x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

func energyOf(sys System, x State) float64 {
	if h, ok := sys.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}
