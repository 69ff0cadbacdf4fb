package models

import (
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/ode"
)

func TestPendulumEquilibrium(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0

	dx := p.Derive(ode.State{0, 0}, 0)

	if math.Abs(dx[0]) > 1e-10 {
		t.Errorf("expected zero velocity at equilibrium, got %f", dx[0])
	}

	if math.Abs(dx[1]) > 1e-10 {
		t.Errorf("expected zero acceleration at equilibrium, got %f", dx[1])
	}
}

func TestPendulumGravity(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0

	dx := p.Derive(ode.State{math.Pi / 2, 0}, 0)

	expectedAccel := -p.Gravity / p.Length

	if math.Abs(dx[1]-expectedAccel) > 1e-6 {
		t.Errorf("expected acceleration %f, got %f", expectedAccel, dx[1])
	}
}

func TestHarmonicEnergy(t *testing.T) {
	h := NewHarmonic()

	e := h.Energy(ode.State{1.0, 0.0})
	if math.Abs(e-0.5) > 1e-12 {
		t.Errorf("expected energy 0.5, got %f", e)
	}
}

func TestLorenzFixedPoint(t *testing.T) {
	l := NewLorenz()

	// The origin is a fixed point for all parameter values.
	dx := l.Derive(ode.State{0, 0, 0}, 0)
	for i, v := range dx {
		if v != 0 {
			t.Errorf("expected zero derivative at origin, got dx[%d]=%f", i, v)
		}
	}
}

func TestLotkaVolterraFixedPoint(t *testing.T) {
	lv := NewLotkaVolterra()

	// Nontrivial equilibrium at (gamma/delta, alpha/beta).
	x := ode.State{lv.Gamma / lv.Delta, lv.Alpha / lv.Beta}
	dx := lv.Derive(x, 0)

	if math.Abs(dx[0]) > 1e-10 || math.Abs(dx[1]) > 1e-10 {
		t.Errorf("expected equilibrium, got %v", dx)
	}
}

func TestTunableRoundTrip(t *testing.T) {
	systems := []ode.System{NewPendulum(), NewHarmonic(), NewVanDerPol(), NewLorenz(), NewLotkaVolterra()}

	for _, sys := range systems {
		tunable, ok := sys.(ode.Tunable)
		if !ok {
			t.Fatalf("%T is not tunable", sys)
		}

		for name := range tunable.GetParams() {
			tunable.SetParam(name, 2.5)
			if got := tunable.GetParams()[name]; got != 2.5 {
				t.Errorf("%T: param %s not settable, got %f", sys, name, got)
			}
		}
	}
}

func TestDefaultStatesMatchDim(t *testing.T) {
	systems := []ode.System{NewPendulum(), NewHarmonic(), NewVanDerPol(), NewLorenz(), NewLotkaVolterra()}

	for _, sys := range systems {
		d, ok := sys.(ode.Defaulter)
		if !ok {
			t.Fatalf("%T has no default state", sys)
		}
		if len(d.DefaultState()) != sys.Dim() {
			t.Errorf("%T: default state dim %d != %d", sys, len(d.DefaultState()), sys.Dim())
		}
	}
}
