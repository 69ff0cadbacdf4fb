package minimize

import (
	"math"
	"testing"
)

func TestBFGSRosenbrock(t *testing.T) {
	res, err := Run(Rosenbrock, []float64{-1.2, 1.0}, "bfgs")
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	if math.Abs(res.X[0]-1) > 1e-4 || math.Abs(res.X[1]-1) > 1e-4 {
		t.Errorf("expected minimum near (1, 1), got (%f, %f)", res.X[0], res.X[1])
	}
	if res.F > 1e-8 {
		t.Errorf("expected near-zero value, got %e", res.F)
	}
	if res.Iterations == 0 {
		t.Error("expected nonzero iteration count")
	}
}

func TestNelderMeadSphere(t *testing.T) {
	res, err := Run(Sphere, []float64{3.0, -4.0}, "neldermead")
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	if math.Abs(res.X[0]) > 1e-3 || math.Abs(res.X[1]) > 1e-3 {
		t.Errorf("expected minimum near origin, got (%f, %f)", res.X[0], res.X[1])
	}
}

func TestHimmelblauReachesAMinimum(t *testing.T) {
	res, err := Run(Himmelblau, []float64{0.0, 0.0}, "bfgs")
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	// Four global minima, all with f=0; any of them is acceptable.
	if res.F > 1e-8 {
		t.Errorf("expected f near 0, got %e", res.F)
	}
}

func TestGradientsMatchFiniteDifferences(t *testing.T) {
	points := [][]float64{{0.3, -0.7}, {1.5, 2.0}, {-2.0, 0.1}}
	h := 1e-6

	for _, obj := range []Objective{Rosenbrock, Himmelblau, Sphere} {
		for _, x := range points {
			grad := make([]float64, len(x))
			obj.Grad(grad, x)

			for i := range x {
				xp := append([]float64(nil), x...)
				xm := append([]float64(nil), x...)
				xp[i] += h
				xm[i] -= h
				fd := (obj.Func(xp) - obj.Func(xm)) / (2 * h)

				if math.Abs(fd-grad[i]) > 1e-3*(1+math.Abs(fd)) {
					t.Errorf("%s: grad[%d] at %v: analytic %f vs fd %f", obj.Name, i, x, grad[i], fd)
				}
			}
		}
	}
}

func TestRunValidation(t *testing.T) {
	if _, err := Run(Rosenbrock, []float64{1}, "bfgs"); err == nil {
		t.Error("expected error for wrong dimension")
	}
	if _, err := Run(Rosenbrock, []float64{0, 0}, "gradientfree"); err == nil {
		t.Error("expected error for unknown method")
	}
	if _, err := Lookup("banana"); err == nil {
		t.Error("expected error for unknown objective")
	}
}

func TestFitDampedSine(t *testing.T) {
	truth := DampedSine{Amplitude: 2.0, Decay: 0.3, Omega: 5.0, Phase: 0.5}

	n := 400
	times := make([]float64, n)
	values := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * 0.02
		values[i] = truth.Eval(times[i])
	}

	fit, err := FitDampedSine(times, values)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	if fit.Residual > 1e-4 {
		t.Errorf("residual too large: %e", fit.Residual)
	}
	if math.Abs(math.Abs(fit.Omega)-truth.Omega) > 0.05 {
		t.Errorf("expected omega near %f, got %f", truth.Omega, fit.Omega)
	}
}

func TestFitDampedSineValidation(t *testing.T) {
	if _, err := FitDampedSine([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := FitDampedSine([]float64{1, 2}, []float64{1, 2}); err == nil {
		t.Error("expected error for too few samples")
	}
}
