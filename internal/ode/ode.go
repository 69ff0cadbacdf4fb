package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is an autonomous or time-dependent ODE, dX/dt = Derive(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Hamiltonian systems expose total energy, used for drift reporting.
type Hamiltonian interface {
	Energy(x State) float64
}

// Tunable systems expose named parameters for the live view.
type Tunable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}

// Defaulter systems know a sensible initial condition.
type Defaulter interface {
	DefaultState() State
}

type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

type Config struct {
	Dt            float64
	Duration      float64
	Tolerance     float64
	Adaptive      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		Tolerance:     1e-6,
		Adaptive:      false,
		ValidateState: true,
	}
}

type Result struct {
	Times       []float64
	States      []State
	EnergyDrift float64
	StepsTaken  int
}

// Column extracts one state variable as a flat series.
func (r *Result) Column(i int) []float64 {
	out := make([]float64, 0, len(r.States))
	for _, s := range r.States {
		if i < len(s) {
			out = append(out, s[i])
		}
	}
	return out
}
