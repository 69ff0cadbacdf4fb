package minimize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// DampedSine is the fitted model A·exp(-λt)·sin(ωt + φ).
type DampedSine struct {
	Amplitude float64
	Decay     float64
	Omega     float64
	Phase     float64
	Residual  float64 // sum of squared errors at the fit
}

func (d DampedSine) Eval(t float64) float64 {
	return d.Amplitude * math.Exp(-d.Decay*t) * math.Sin(d.Omega*t+d.Phase)
}

// FitDampedSine least-squares fits a damped sinusoid to (times, values)
// using Nelder-Mead. The initial guess is derived from the data: amplitude
// from the largest excursion, frequency from zero-crossing counting.
func FitDampedSine(times, values []float64) (*DampedSine, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("minimize: times and values length mismatch: %d != %d", len(times), len(values))
	}
	if len(times) < 8 {
		return nil, fmt.Errorf("minimize: need at least 8 samples to fit, got %d", len(times))
	}

	sse := func(p []float64) float64 {
		model := DampedSine{Amplitude: p[0], Decay: p[1], Omega: p[2], Phase: p[3]}
		sum := 0.0
		for i, t := range times {
			r := model.Eval(t) - values[i]
			sum += r * r
		}
		return sum
	}

	x0 := []float64{guessAmplitude(values), 0.1, guessOmega(times, values), 0.0}

	res, err := optimize.Minimize(optimize.Problem{Func: sse}, x0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("minimize: damped sine fit: %w", err)
	}

	return &DampedSine{
		Amplitude: res.X[0],
		Decay:     res.X[1],
		Omega:     res.X[2],
		Phase:     res.X[3],
		Residual:  res.F,
	}, nil
}

func guessAmplitude(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	if peak == 0 {
		peak = 1
	}
	return peak
}

func guessOmega(times, values []float64) float64 {
	crossings := 0
	for i := 1; i < len(values); i++ {
		if (values[i-1] < 0) != (values[i] < 0) {
			crossings++
		}
	}
	span := times[len(times)-1] - times[0]
	if crossings == 0 || span <= 0 {
		return 1.0
	}
	// Two crossings per period.
	return math.Pi * float64(crossings) / span
}
