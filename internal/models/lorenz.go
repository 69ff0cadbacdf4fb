package models

import "github.com/san-kum/numlab/internal/ode"

// Lorenz is the classic chaotic attractor. State: [x, y, z].
type Lorenz struct {
	Sigma, Rho, Beta float64
}

func NewLorenz() *Lorenz { return &Lorenz{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

func (l *Lorenz) Dim() int { return 3 }

func (l *Lorenz) Derive(s ode.State, t float64) ode.State {
	return ode.State{
		l.Sigma * (s[1] - s[0]),
		s[0]*(l.Rho-s[2]) - s[1],
		s[0]*s[1] - l.Beta*s[2],
	}
}

func (l *Lorenz) DefaultState() ode.State { return ode.State{1.0, 1.0, 1.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.Sigma, "rho": l.Rho, "beta": l.Beta}
}

func (l *Lorenz) SetParam(name string, value float64) {
	switch name {
	case "sigma":
		l.Sigma = value
	case "rho":
		l.Rho = value
	case "beta":
		l.Beta = value
	}
}
