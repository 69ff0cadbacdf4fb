// Package spectrum computes frequency-domain views of sampled signals.
//
// The package does not implement an FFT itself; it wraps external FFT
// backends and shapes their output into frequency/power points.
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects which FFT implementation does the transform.
type Backend string

const (
	BackendGonum Backend = "gonum"
	BackendGoDSP Backend = "godsp"
)

// FrequencyPoint is a single spectrum bin.
type FrequencyPoint struct {
	Freq  float64 `json:"frequency"` // Hz
	Power float64 `json:"power"`     // coefficient magnitude
}

// PowerSpectrum transforms signal (sampled at rate Hz) and returns one point
// per non-negative frequency bin. An empty signal yields nil.
func PowerSpectrum(signal []float64, rate float64, backend Backend) ([]FrequencyPoint, error) {
	if len(signal) == 0 {
		return nil, nil
	}
	if rate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be positive, got %f", rate)
	}

	switch backend {
	case BackendGonum, "":
		return gonumSpectrum(signal, rate), nil
	case BackendGoDSP:
		return godspSpectrum(signal, rate), nil
	default:
		return nil, fmt.Errorf("spectrum: unknown backend %q", backend)
	}
}

func gonumSpectrum(signal []float64, rate float64) []FrequencyPoint {
	fft := fourier.NewFFT(len(signal))
	coeffs := fft.Coefficients(nil, signal)

	points := make([]FrequencyPoint, len(coeffs))
	for i, c := range coeffs {
		points[i] = FrequencyPoint{
			Freq:  fft.Freq(i) * rate,
			Power: cmplx.Abs(c),
		}
	}
	return points
}

func godspSpectrum(signal []float64, rate float64) []FrequencyPoint {
	coeffs := godsp.FFTReal(signal)

	// Keep the non-negative half, matching the gonum layout.
	half := len(signal)/2 + 1
	points := make([]FrequencyPoint, half)
	for i := 0; i < half; i++ {
		points[i] = FrequencyPoint{
			Freq:  float64(i) * rate / float64(len(signal)),
			Power: cmplx.Abs(coeffs[i]),
		}
	}
	return points
}

// Peak returns the strongest bin, skipping DC. The second return is false
// when the spectrum has no usable bins.
func Peak(points []FrequencyPoint) (FrequencyPoint, bool) {
	if len(points) < 2 {
		return FrequencyPoint{}, false
	}

	best := points[1]
	for _, p := range points[2:] {
		if p.Power > best.Power {
			best = p
		}
	}
	return best, true
}

// Hann applies a Hann window in place and returns the signal.
func Hann(signal []float64) []float64 {
	n := len(signal)
	if n < 2 {
		return signal
	}
	for i := range signal {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		signal[i] *= w
	}
	return signal
}

// Synthesize builds a test signal as a sum of unit sines plus gaussian noise.
func Synthesize(freqs []float64, rate float64, n int, noise float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))

	signal := make([]float64, n)
	for i := range signal {
		t := float64(i) / rate
		for _, f := range freqs {
			signal[i] += math.Sin(2 * math.Pi * f * t)
		}
		if noise > 0 {
			signal[i] += noise * rng.NormFloat64()
		}
	}
	return signal
}
