// Package stats wires the statistics demos to gonum/stat and distuv.
//
// Distributions, sampling, and test statistics are all delegated to gonum;
// this package only names distributions, lays out evaluation grids, and
// bins samples for the terminal histogram.
package stats

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is the slice of the distuv surface the demos use.
// Continuous distributions report a density from Prob; Poisson reports
// its mass function.
type Distribution interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Rand() float64
}

// New builds a named distuv distribution. Missing parameters fall back to
// textbook defaults.
func New(name string, params map[string]float64, seed uint64) (Distribution, error) {
	src := rand.NewPCG(seed, seed)
	get := func(key string, def float64) float64 {
		if v, ok := params[key]; ok {
			return v
		}
		return def
	}

	switch name {
	case "normal":
		return distuv.Normal{Mu: get("mu", 0), Sigma: get("sigma", 1), Src: src}, nil
	case "gamma":
		return distuv.Gamma{Alpha: get("alpha", 2), Beta: get("beta", 1), Src: src}, nil
	case "beta":
		return distuv.Beta{Alpha: get("alpha", 2), Beta: get("beta", 5), Src: src}, nil
	case "poisson":
		return distuv.Poisson{Lambda: get("lambda", 4), Src: src}, nil
	default:
		return nil, fmt.Errorf("stats: unknown distribution: %s", name)
	}
}

// DistributionNames lists what New accepts.
func DistributionNames() []string {
	return []string{"normal", "gamma", "beta", "poisson"}
}

// GridPoint is one row of a PDF/CDF table.
type GridPoint struct {
	X   float64
	PDF float64
	CDF float64
}

// Grid evaluates d at n points across [lo, hi].
func Grid(d Distribution, lo, hi float64, n int) []GridPoint {
	if n < 2 {
		n = 2
	}
	points := make([]GridPoint, n)
	step := (hi - lo) / float64(n-1)
	for i := range points {
		x := lo + float64(i)*step
		points[i] = GridPoint{X: x, PDF: d.Prob(x), CDF: d.CDF(x)}
	}
	return points
}

// Sample draws n variates from d.
func Sample(d Distribution, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// HistBin is one bar of a histogram.
type HistBin struct {
	Left, Right float64
	Count       int
}

// Histogram bins samples into equal-width bins over the sample range.
func Histogram(samples []float64, bins int) []HistBin {
	if len(samples) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistBin, bins)
	for i := range out {
		out[i].Left = lo + float64(i)*width
		out[i].Right = out[i].Left + width
	}

	for _, v := range samples {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Summary holds the usual descriptive statistics.
type Summary struct {
	N              int
	Mean, StdDev   float64
	Min, Max       float64
	Q1, Median, Q3 float64
}

func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return Summary{
		N:      len(samples),
		Mean:   stat.Mean(samples, nil),
		StdDev: stat.StdDev(samples, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}

// KolmogorovSmirnov returns the two-sample KS statistic.
func KolmogorovSmirnov(a, b []float64) float64 {
	as := append([]float64(nil), a...)
	bs := append([]float64(nil), b...)
	sort.Float64s(as)
	sort.Float64s(bs)
	return stat.KolmogorovSmirnov(as, nil, bs, nil)
}

// TTestResult is the outcome of a two-sample Welch t-test.
type TTestResult struct {
	T  float64
	DF float64
	P  float64 // two-sided
}

// WelchTTest compares the means of two samples without assuming equal
// variances. The p-value comes from distuv's Student's t CDF with the
// Welch-Satterthwaite degrees of freedom.
func WelchTTest(a, b []float64) (TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, fmt.Errorf("stats: t-test needs at least 2 samples per group, got %d and %d", len(a), len(b))
	}

	ma, mb := stat.Mean(a, nil), stat.Mean(b, nil)
	va, vb := stat.Variance(a, nil), stat.Variance(b, nil)
	na, nb := float64(len(a)), float64(len(b))

	se2 := va/na + vb/nb
	if se2 == 0 {
		return TTestResult{}, fmt.Errorf("stats: both samples have zero variance")
	}

	t := (ma - mb) / math.Sqrt(se2)
	df := se2 * se2 / (va*va/(na*na*(na-1)) + vb*vb/(nb*nb*(nb-1)))

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * tdist.CDF(-math.Abs(t))

	return TTestResult{T: t, DF: df, P: p}, nil
}
