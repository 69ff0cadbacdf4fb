package spectrum

import (
	"math"
	"testing"
)

func TestPowerSpectrumFindsTone(t *testing.T) {
	rate := 256.0
	signal := Synthesize([]float64{10.0}, rate, 1024, 0, 1)

	for _, backend := range []Backend{BackendGonum, BackendGoDSP} {
		points, err := PowerSpectrum(signal, rate, backend)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}

		peak, ok := Peak(points)
		if !ok {
			t.Fatalf("%s: no peak found", backend)
		}

		if math.Abs(peak.Freq-10.0) > rate/1024 {
			t.Errorf("%s: dominant frequency %f, expected 10.0", backend, peak.Freq)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	rate := 128.0
	signal := Synthesize([]float64{5.0, 20.0}, rate, 512, 0.05, 7)

	a, err := PowerSpectrum(signal, rate, BackendGonum)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PowerSpectrum(signal, rate, BackendGoDSP)
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != len(b) {
		t.Fatalf("bin counts differ: %d vs %d", len(a), len(b))
	}

	for i := range a {
		if math.Abs(a[i].Power-b[i].Power) > 1e-6*(1+a[i].Power) {
			t.Fatalf("bin %d: powers differ %f vs %f", i, a[i].Power, b[i].Power)
		}
	}
}

func TestPowerSpectrumEdgeCases(t *testing.T) {
	points, err := PowerSpectrum(nil, 100, BackendGonum)
	if err != nil || points != nil {
		t.Errorf("empty signal: expected nil, nil; got %v, %v", points, err)
	}

	if _, err := PowerSpectrum([]float64{1, 2}, 0, BackendGonum); err == nil {
		t.Error("expected error for zero sample rate")
	}

	if _, err := PowerSpectrum([]float64{1, 2}, 100, Backend("fftw")); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestPeakSkipsDC(t *testing.T) {
	// Constant signal: all power sits in the DC bin.
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = 3.0
	}

	points, err := PowerSpectrum(signal, 64, BackendGonum)
	if err != nil {
		t.Fatal(err)
	}

	peak, ok := Peak(points)
	if !ok {
		t.Fatal("expected a peak")
	}
	if peak.Freq == 0 {
		t.Error("peak should never be the DC bin")
	}
}

func TestHannEndpoints(t *testing.T) {
	signal := []float64{1, 1, 1, 1, 1}
	Hann(signal)

	if signal[0] != 0 || signal[len(signal)-1] != 0 {
		t.Errorf("Hann window should zero the endpoints, got %v", signal)
	}
	if signal[2] < 0.9 {
		t.Errorf("Hann window should keep the center near 1, got %f", signal[2])
	}
}
