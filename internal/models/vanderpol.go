package models

import "github.com/san-kum/numlab/internal/ode"

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
type VanDerPol struct {
	Mu float64 // Nonlinearity parameter
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{
		Mu: 1.0, // Classic value for limit cycle
	}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(state ode.State, t float64) ode.State {
	x, y := state[0], state[1]
	return ode.State{y, v.Mu*(1-x*x)*y - x}
}

func (v *VanDerPol) DefaultState() ode.State {
	return ode.State{2.0, 0.0}
}

func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{"mu": v.Mu}
}

func (v *VanDerPol) SetParam(name string, value float64) {
	if name == "mu" {
		v.Mu = value
	}
}
