// Package curve wraps gonum/interp for the interpolation demos.
package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Kind names an interpolation scheme.
type Kind string

const (
	Linear Kind = "linear"
	Akima  Kind = "akima"
	Cubic  Kind = "cubic"
)

// Interpolate fits the chosen predictor through (xs, ys). xs must be
// strictly increasing, with at least two knots (three for splines).
func Interpolate(xs, ys []float64, kind Kind) (interp.Predictor, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("curve: xs and ys length mismatch: %d != %d", len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("curve: xs must be strictly increasing (violation at index %d)", i)
		}
	}

	var (
		p       interp.FittablePredictor
		minKnot int
	)
	switch kind {
	case Linear:
		p, minKnot = &interp.PiecewiseLinear{}, 2
	case Akima:
		p, minKnot = &interp.AkimaSpline{}, 3
	case Cubic, "":
		p, minKnot = &interp.NaturalCubic{}, 3
	default:
		return nil, fmt.Errorf("curve: unknown kind %q", kind)
	}

	if len(xs) < minKnot {
		return nil, fmt.Errorf("curve: %s needs at least %d knots, got %d", kind, minKnot, len(xs))
	}

	if err := p.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("curve: fit %s: %w", kind, err)
	}
	return p, nil
}

// Resample evaluates p on a dense uniform grid over [x0, x1].
func Resample(p interp.Predictor, x0, x1 float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (x1 - x0) / float64(n-1)
	for i := range xs {
		xs[i] = x0 + float64(i)*step
		ys[i] = p.Predict(xs[i])
	}
	return xs, ys
}

// MaxError reports the largest deviation between p and the ground truth f
// over n evaluation points in [x0, x1].
func MaxError(p interp.Predictor, f func(float64) float64, x0, x1 float64, n int) float64 {
	worst := 0.0
	step := (x1 - x0) / float64(n-1)
	for i := 0; i < n; i++ {
		x := x0 + float64(i)*step
		if d := math.Abs(p.Predict(x) - f(x)); d > worst {
			worst = d
		}
	}
	return worst
}

// SampleFunc evaluates f at n uniform knots over [x0, x1].
func SampleFunc(f func(float64) float64, x0, x1 float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (x1 - x0) / float64(n-1)
	for i := range xs {
		xs[i] = x0 + float64(i)*step
		ys[i] = f(xs[i])
	}
	return xs, ys
}
