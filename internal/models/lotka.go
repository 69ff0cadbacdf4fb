package models

import "github.com/san-kum/numlab/internal/ode"

// LotkaVolterra is the predator-prey population model.
// State: [prey, predator].
// Equations:
//
//	dx/dt = αx - βxy
//	dy/dt = δxy - γy
type LotkaVolterra struct {
	Alpha, Beta, Delta, Gamma float64
}

func NewLotkaVolterra() *LotkaVolterra {
	return &LotkaVolterra{Alpha: 1.1, Beta: 0.4, Delta: 0.1, Gamma: 0.4}
}

func (lv *LotkaVolterra) Dim() int { return 2 }

func (lv *LotkaVolterra) Derive(s ode.State, t float64) ode.State {
	x, y := s[0], s[1]
	return ode.State{
		lv.Alpha*x - lv.Beta*x*y,
		lv.Delta*x*y - lv.Gamma*y,
	}
}

func (lv *LotkaVolterra) DefaultState() ode.State { return ode.State{10.0, 10.0} }

func (lv *LotkaVolterra) GetParams() map[string]float64 {
	return map[string]float64{
		"alpha": lv.Alpha,
		"beta":  lv.Beta,
		"delta": lv.Delta,
		"gamma": lv.Gamma,
	}
}

func (lv *LotkaVolterra) SetParam(name string, value float64) {
	switch name {
	case "alpha":
		lv.Alpha = value
	case "beta":
		lv.Beta = value
	case "delta":
		lv.Delta = value
	case "gamma":
		lv.Gamma = value
	}
}
