package stats_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/numlab/internal/stats"
)

var _ = Describe("distributions", func() {
	It("rejects unknown names", func() {
		_, err := stats.New("cauchy-ish", nil, 1)
		Expect(err).To(HaveOccurred())
	})

	It("samples the standard normal with the right moments", func() {
		d, err := stats.New("normal", nil, 42)
		Expect(err).NotTo(HaveOccurred())

		samples := stats.Sample(d, 20000)
		s := stats.Summarize(samples)

		Expect(s.Mean).To(BeNumerically("~", 0, 0.05))
		Expect(s.StdDev).To(BeNumerically("~", 1, 0.05))
		Expect(s.Median).To(BeNumerically("~", 0, 0.05))
	})

	It("builds PDF grids that integrate to one", func() {
		d, err := stats.New("normal", map[string]float64{"mu": 2, "sigma": 0.5}, 1)
		Expect(err).NotTo(HaveOccurred())

		grid := stats.Grid(d, -2, 6, 2001)
		xs := make([]float64, len(grid))
		pdf := make([]float64, len(grid))
		for i, p := range grid {
			xs[i] = p.X
			pdf[i] = p.PDF
		}

		Expect(integrate.Trapezoidal(xs, pdf)).To(BeNumerically("~", 1, 1e-4))
	})

	It("has monotonically nondecreasing CDF grids", func() {
		d, err := stats.New("gamma", nil, 1)
		Expect(err).NotTo(HaveOccurred())

		grid := stats.Grid(d, 0, 20, 200)
		for i := 1; i < len(grid); i++ {
			Expect(grid[i].CDF).To(BeNumerically(">=", grid[i-1].CDF))
		}
	})

	It("reproduces the Poisson mean", func() {
		d, err := stats.New("poisson", map[string]float64{"lambda": 6}, 9)
		Expect(err).NotTo(HaveOccurred())

		s := stats.Summarize(stats.Sample(d, 20000))
		Expect(s.Mean).To(BeNumerically("~", 6, 0.1))
	})
})

var _ = Describe("histograms", func() {
	It("bins every sample exactly once", func() {
		d, _ := stats.New("beta", nil, 3)
		samples := stats.Sample(d, 5000)

		bins := stats.Histogram(samples, 20)
		total := 0
		for _, b := range bins {
			total += b.Count
		}
		Expect(total).To(Equal(len(samples)))
	})

	It("returns nil for degenerate input", func() {
		Expect(stats.Histogram(nil, 10)).To(BeNil())
		Expect(stats.Histogram([]float64{1, 2}, 0)).To(BeNil())
	})
})

var _ = Describe("hypothesis tests", func() {
	It("KS statistic is small for same-distribution samples", func() {
		a, _ := stats.New("normal", nil, 11)
		b, _ := stats.New("normal", nil, 12)

		ks := stats.KolmogorovSmirnov(stats.Sample(a, 5000), stats.Sample(b, 5000))
		Expect(ks).To(BeNumerically("<", 0.05))
	})

	It("KS statistic is large for shifted samples", func() {
		a, _ := stats.New("normal", nil, 11)
		b, _ := stats.New("normal", map[string]float64{"mu": 3}, 12)

		ks := stats.KolmogorovSmirnov(stats.Sample(a, 2000), stats.Sample(b, 2000))
		Expect(ks).To(BeNumerically(">", 0.5))
	})

	It("Welch t-test does not reject equal means", func() {
		a, _ := stats.New("normal", nil, 21)
		b, _ := stats.New("normal", nil, 22)

		res, err := stats.WelchTTest(stats.Sample(a, 2000), stats.Sample(b, 2000))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.P).To(BeNumerically(">", 0.001))
	})

	It("Welch t-test rejects clearly separated means", func() {
		a, _ := stats.New("normal", nil, 31)
		b, _ := stats.New("normal", map[string]float64{"mu": 1}, 32)

		res, err := stats.WelchTTest(stats.Sample(a, 2000), stats.Sample(b, 2000))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.P).To(BeNumerically("<", 1e-6))
		Expect(math.Abs(res.T)).To(BeNumerically(">", 10))
	})

	It("validates input sizes", func() {
		_, err := stats.WelchTTest([]float64{1}, []float64{1, 2})
		Expect(err).To(HaveOccurred())
	})
})
