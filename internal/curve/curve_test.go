package curve

import (
	"math"
	"testing"
)

func TestInterpolatePassesThroughKnots(t *testing.T) {
	xs, ys := SampleFunc(math.Sin, 0, 2*math.Pi, 9)

	for _, kind := range []Kind{Linear, Akima, Cubic} {
		p, err := Interpolate(xs, ys, kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}

		for i := range xs {
			if math.Abs(p.Predict(xs[i])-ys[i]) > 1e-10 {
				t.Errorf("%s: does not pass through knot %d", kind, i)
			}
		}
	}
}

func TestSplineBeatsLinear(t *testing.T) {
	xs, ys := SampleFunc(math.Sin, 0, 2*math.Pi, 9)

	linear, err := Interpolate(xs, ys, Linear)
	if err != nil {
		t.Fatal(err)
	}
	spline, err := Interpolate(xs, ys, Cubic)
	if err != nil {
		t.Fatal(err)
	}

	linErr := MaxError(linear, math.Sin, 0, 2*math.Pi, 500)
	splErr := MaxError(spline, math.Sin, 0, 2*math.Pi, 500)

	if splErr >= linErr {
		t.Errorf("expected spline error (%e) below linear error (%e)", splErr, linErr)
	}
}

func TestResampleGrid(t *testing.T) {
	xs, ys := SampleFunc(func(x float64) float64 { return x * x }, 0, 1, 5)
	p, err := Interpolate(xs, ys, Linear)
	if err != nil {
		t.Fatal(err)
	}

	gx, gy := Resample(p, 0, 1, 11)
	if len(gx) != 11 || len(gy) != 11 {
		t.Fatalf("expected 11 samples, got %d/%d", len(gx), len(gy))
	}
	if gx[0] != 0 || gx[10] != 1 {
		t.Errorf("grid endpoints wrong: %f..%f", gx[0], gx[10])
	}
}

func TestInterpolateValidation(t *testing.T) {
	if _, err := Interpolate([]float64{0, 1}, []float64{0}, Linear); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := Interpolate([]float64{0, 1, 1}, []float64{0, 1, 2}, Linear); err == nil {
		t.Error("expected error for non-increasing xs")
	}
	if _, err := Interpolate([]float64{0, 1}, []float64{0, 1}, Cubic); err == nil {
		t.Error("expected error for too few spline knots")
	}
	if _, err := Interpolate([]float64{0, 1, 2}, []float64{0, 1, 2}, Kind("quintic")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
