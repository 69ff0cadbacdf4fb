package models

import "github.com/san-kum/numlab/internal/ode"

// Harmonic is an undamped spring-mass oscillator.
// State: [x, v].
type Harmonic struct {
	Stiffness float64
	Mass      float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{Stiffness: 1.0, Mass: 1.0}
}

func (h *Harmonic) Dim() int { return 2 }

func (h *Harmonic) Derive(x ode.State, t float64) ode.State {
	return ode.State{x[1], -h.Stiffness / h.Mass * x[0]}
}

func (h *Harmonic) DefaultState() ode.State { return ode.State{1.0, 0.0} }

func (h *Harmonic) Energy(x ode.State) float64 {
	return 0.5*h.Mass*x[1]*x[1] + 0.5*h.Stiffness*x[0]*x[0]
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"stiffness": h.Stiffness, "mass": h.Mass}
}

func (h *Harmonic) SetParam(name string, value float64) {
	switch name {
	case "stiffness":
		h.Stiffness = value
	case "mass":
		h.Mass = value
	}
}
