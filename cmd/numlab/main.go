package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/curve"
	"github.com/san-kum/numlab/internal/demo"
	"github.com/san-kum/numlab/internal/minimize"
	"github.com/san-kum/numlab/internal/ode"
	"github.com/san-kum/numlab/internal/plotting"
	"github.com/san-kum/numlab/internal/spectrum"
	"github.com/san-kum/numlab/internal/stats"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	plotPath   string

	// ode
	dt        float64
	duration  float64
	method    string
	initState []float64

	// fft
	fromRun  string
	freqs    []float64
	rate     float64
	samples  int
	noise    float64
	seed     uint64
	backend  string
	windowed bool

	// minimize
	from []float64

	// fit
	fitAmp   float64
	fitDecay float64
	fitOmega float64
	fitPhase float64

	// interp
	knots int
	dense int
	kind  string

	// stats
	distParams string
	draws      int
	bins       int
	distA      string
	distB      string
	paramsA    string
	paramsB    string
	muA        float64
	muB        float64
	sigma      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical methods demo lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&plotPath, "plot", "", "save a chart to this path (png/svg by extension)")

	odeCmd := &cobra.Command{
		Use:   "ode [model]",
		Short: "integrate a dynamical system",
		Args:  cobra.ExactArgs(1),
		RunE:  runODE,
	}
	odeCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	odeCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	odeCmd.Flags().StringVar(&method, "method", "rk4", "integration method")
	odeCmd.Flags().Float64SliceVar(&initState, "state", nil, "initial state (comma separated)")
	odeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	odeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().StringVar(&method, "method", "rk4", "integration method")
	liveCmd.Flags().Float64SliceVar(&initState, "state", nil, "initial state (comma separated)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	fftCmd := &cobra.Command{
		Use:   "fft",
		Short: "power spectrum of a synthetic signal",
		RunE:  runFFT,
	}
	fftCmd.Flags().Float64SliceVar(&freqs, "freqs", []float64{10, 25}, "tone frequencies (hz)")
	fftCmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "sample rate (hz)")
	fftCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	fftCmd.Flags().Float64Var(&noise, "noise", 0.0, "gaussian noise amplitude")
	fftCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	fftCmd.Flags().StringVar(&backend, "backend", "gonum", "fft backend (gonum or godsp)")
	fftCmd.Flags().BoolVar(&windowed, "window", false, "apply a hann window")
	fftCmd.Flags().StringVar(&fromRun, "run", "", "analyze a stored run's first series instead of synthesizing")
	fftCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	minimizeCmd := &cobra.Command{
		Use:   "minimize [objective]",
		Short: "minimize a test objective",
		Args:  cobra.ExactArgs(1),
		RunE:  runMinimize,
	}
	minimizeCmd.Flags().Float64SliceVar(&from, "from", nil, "starting point (comma separated)")
	minimizeCmd.Flags().StringVar(&method, "method", "bfgs", "method (bfgs or neldermead)")

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "recover damped sine parameters from noisy samples",
		RunE:  runFit,
	}
	fitCmd.Flags().Float64Var(&fitAmp, "amp", 2.0, "true amplitude")
	fitCmd.Flags().Float64Var(&fitDecay, "decay", 0.3, "true decay rate")
	fitCmd.Flags().Float64Var(&fitOmega, "omega", 4.0, "true angular frequency")
	fitCmd.Flags().Float64Var(&fitPhase, "phase", 0.5, "true phase")
	fitCmd.Flags().Float64Var(&noise, "noise", 0.05, "gaussian noise amplitude")
	fitCmd.Flags().IntVar(&samples, "samples", 200, "number of samples")
	fitCmd.Flags().Float64Var(&duration, "time", 10.0, "sampling window (s)")
	fitCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	fitCmd.Flags().StringVar(&fromRun, "run", "", "fit a stored run's first series instead of synthesizing")

	interpCmd := &cobra.Command{
		Use:   "interp",
		Short: "compare interpolation schemes on sparse sin samples",
		RunE:  runInterp,
	}
	interpCmd.Flags().IntVar(&knots, "knots", 9, "number of knots")
	interpCmd.Flags().IntVar(&dense, "dense", 500, "dense reconstruction samples")
	interpCmd.Flags().StringVar(&kind, "kind", "", "scheme (linear, akima, cubic; empty compares all)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "distribution sampling and hypothesis tests",
	}

	distCmd := &cobra.Command{
		Use:   "dist [name]",
		Short: "sample a distribution and summarize it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDist,
	}
	distCmd.Flags().StringVar(&distParams, "params", "", "parameters, e.g. mu=0,sigma=1")
	distCmd.Flags().IntVar(&draws, "draws", config.DefaultDraws, "number of draws")
	distCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")
	distCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	distCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	ksCmd := &cobra.Command{
		Use:   "ks",
		Short: "two-sample kolmogorov-smirnov test",
		RunE:  runKS,
	}
	ksCmd.Flags().StringVar(&distA, "a", "normal", "first distribution")
	ksCmd.Flags().StringVar(&distB, "b", "normal", "second distribution")
	ksCmd.Flags().StringVar(&paramsA, "params-a", "", "first distribution parameters")
	ksCmd.Flags().StringVar(&paramsB, "params-b", "", "second distribution parameters")
	ksCmd.Flags().IntVar(&draws, "draws", config.DefaultDraws, "draws per sample")
	ksCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	ttestCmd := &cobra.Command{
		Use:   "ttest",
		Short: "welch two-sample t-test on normal draws",
		RunE:  runTTest,
	}
	ttestCmd.Flags().Float64Var(&muA, "mu-a", 0.0, "mean of first sample")
	ttestCmd.Flags().Float64Var(&muB, "mu-b", 0.5, "mean of second sample")
	ttestCmd.Flags().Float64Var(&sigma, "sigma", 1.0, "standard deviation of both samples")
	ttestCmd.Flags().IntVar(&draws, "draws", config.DefaultDraws, "draws per sample")
	ttestCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	statsCmd.AddCommand(distCmd, ksCmd, ttestCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	replotCmd := &cobra.Command{
		Use:   "replot [run_id]",
		Short: "replot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  replotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(odeCmd, liveCmd, fftCmd, minimizeCmd, fitCmd, interpCmd,
		statsCmd, listCmd, showCmd, replotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyPreset and applyConfig implement the precedence chain: preset values
// first, config file on top, and explicit CLI flags win over both.
func applyPreset(model string) error {
	if preset == "" {
		return nil
	}
	cfg := config.GetPreset(model, preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
	}
	dt = cfg.Dt
	duration = cfg.Duration
	method = cfg.Method
	initState = append([]float64(nil), cfg.InitState...)
	return nil
}

func applyConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("time") {
		duration = cfg.Duration
	}
	if !cmd.Flags().Changed("method") {
		method = cfg.Method
	}
	if !cmd.Flags().Changed("state") && len(cfg.InitState) > 0 {
		initState = append([]float64(nil), cfg.InitState...)
	}
	return nil
}

func runODE(cmd *cobra.Command, args []string) error {
	model := args[0]

	if err := applyPreset(model); err != nil {
		return err
	}
	if err := applyConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := demo.NewRegistry()
	cfg := demo.RunConfig{
		Model:     model,
		Method:    method,
		InitState: initState,
		Dt:        dt,
		Duration:  duration,
	}

	fmt.Printf("integrating %s with %s...\n", model, method)
	start := time.Now()

	run, err := registry.RunODE(context.Background(), cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := demo.SaveRun(st, cfg, run)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", run.Result.StepsTaken)
	if run.Result.EnergyDrift > 0 {
		fmt.Printf("energy drift: %.3g\n", run.Result.EnergyDrift)
	}
	fmt.Println()

	for i, label := range run.Labels {
		fmt.Println(plotting.Line(run.Result.Column(i), label+" vs time", 80, 10))
		fmt.Println()
	}

	if plotPath != "" {
		series := make([]plotting.Series, len(run.Labels))
		for i, label := range run.Labels {
			series[i] = plotting.Series{Name: label, Ys: run.Result.Column(i)}
		}
		if err := plotting.SaveLines(plotPath, model, "t", "state", run.Result.Times, series); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model := args[0]

	if err := applyPreset(model); err != nil {
		return err
	}

	registry := demo.NewRegistry()
	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}
	stepper, err := registry.GetStepper(method)
	if err != nil {
		return err
	}

	x0, err := resolveInitState(sys, initState, model)
	if err != nil {
		return err
	}

	m := tui.NewModel(sys, stepper, x0, dt, model, registry.Labels(model, sys.Dim()))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runFFT(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("freqs") && len(cfg.Signal.Freqs) > 0 {
			freqs = cfg.Signal.Freqs
		}
		if !cmd.Flags().Changed("rate") {
			rate = cfg.Signal.Rate
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Signal.Samples
		}
		if !cmd.Flags().Changed("noise") {
			noise = cfg.Signal.Noise
		}
		if !cmd.Flags().Changed("backend") && cfg.Signal.Backend != "" {
			backend = cfg.Signal.Backend
		}
	}

	var signal []float64
	if fromRun != "" {
		times, labels, columns, err := storage.New(dataDir).LoadSeries(fromRun)
		if err != nil {
			return err
		}
		if len(columns) == 0 || len(times) < 2 {
			return fmt.Errorf("run %s has no series to analyze", fromRun)
		}
		signal = columns[0]
		samples = len(signal)
		if !cmd.Flags().Changed("rate") {
			rate = 1.0 / (times[1] - times[0])
		}
		fmt.Printf("analyzing %s from run %s\n", labels[0], fromRun)
	} else {
		signal = spectrum.Synthesize(freqs, rate, samples, noise, seed)
	}
	if windowed {
		signal = spectrum.Hann(signal)
	}

	points, err := spectrum.PowerSpectrum(signal, rate, spectrum.Backend(backend))
	if err != nil {
		return err
	}

	powers := make([]float64, len(points))
	axis := make([]float64, len(points))
	for i, p := range points {
		powers[i] = p.Power
		axis[i] = p.Freq
	}

	if fromRun == "" {
		fmt.Printf("signal: %d samples at %.0f hz, tones at %v hz\n\n", samples, rate, freqs)
	}
	fmt.Println(plotting.Line(powers, "power spectrum", 80, 15))
	fmt.Println()

	if peak, ok := spectrum.Peak(points); ok {
		fmt.Printf("dominant frequency: %.3f hz\n", peak.Freq)
		if peak.Freq > 0 {
			fmt.Printf("period: %.3f s\n", 1.0/peak.Freq)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.RunMetadata{Demo: "fft", Method: backend}
	runID, err := st.Save(meta, axis, []string{"power"}, [][]float64{powers})
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)

	if plotPath != "" {
		series := []plotting.Series{{Name: "power", Ys: powers}}
		if err := plotting.SaveLines(plotPath, "power spectrum", "frequency (hz)", "power", axis, series); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

func runMinimize(cmd *cobra.Command, args []string) error {
	obj, err := minimize.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, minimize.Names())
	}

	x0 := from
	if len(x0) == 0 {
		x0 = make([]float64, obj.Dim)
		for i := range x0 {
			x0[i] = -1.0
		}
	}

	fmt.Printf("minimizing %s from %v with %s...\n", obj.Name, x0, method)

	result, err := minimize.Run(obj, x0, method)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "minimum\t%v\n", formatVec(result.X))
	fmt.Fprintf(w, "value\t%.6g\n", result.F)
	if result.GradNorm > 0 {
		fmt.Fprintf(w, "gradient norm\t%.3g\n", result.GradNorm)
	}
	fmt.Fprintf(w, "iterations\t%d\n", result.Iterations)
	fmt.Fprintf(w, "evaluations\t%d\n", result.Evaluations)
	fmt.Fprintf(w, "status\t%s\n", result.Status)
	return w.Flush()
}

func formatVec(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func runFit(cmd *cobra.Command, args []string) error {
	var times, values []float64
	var truth *minimize.DampedSine

	if fromRun != "" {
		runTimes, labels, columns, err := storage.New(dataDir).LoadSeries(fromRun)
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			return fmt.Errorf("run %s has no series to fit", fromRun)
		}
		times, values = runTimes, columns[0]
		fmt.Printf("fitting %s from run %s\n", labels[0], fromRun)
	} else {
		truth = &minimize.DampedSine{
			Amplitude: fitAmp,
			Decay:     fitDecay,
			Omega:     fitOmega,
			Phase:     fitPhase,
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		times = make([]float64, samples)
		values = make([]float64, samples)
		for i := range times {
			times[i] = duration * float64(i) / float64(samples-1)
			values[i] = truth.Eval(times[i]) + noise*rng.NormFloat64()
		}
	}

	fitted, err := minimize.FitDampedSine(times, values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if truth != nil {
		fmt.Fprintln(w, "PARAM\tTRUE\tFITTED")
		fmt.Fprintf(w, "amplitude\t%.4f\t%.4f\n", truth.Amplitude, fitted.Amplitude)
		fmt.Fprintf(w, "decay\t%.4f\t%.4f\n", truth.Decay, fitted.Decay)
		fmt.Fprintf(w, "omega\t%.4f\t%.4f\n", truth.Omega, fitted.Omega)
		fmt.Fprintf(w, "phase\t%.4f\t%.4f\n", truth.Phase, fitted.Phase)
	} else {
		fmt.Fprintln(w, "PARAM\tFITTED")
		fmt.Fprintf(w, "amplitude\t%.4f\n", fitted.Amplitude)
		fmt.Fprintf(w, "decay\t%.4f\n", fitted.Decay)
		fmt.Fprintf(w, "omega\t%.4f\n", fitted.Omega)
		fmt.Fprintf(w, "phase\t%.4f\n", fitted.Phase)
	}
	fmt.Fprintf(w, "residual\t\t%.4g\n", fitted.Residual)
	if err := w.Flush(); err != nil {
		return err
	}

	fitCurve := make([]float64, len(times))
	for i, t := range times {
		fitCurve[i] = fitted.Eval(t)
	}
	fmt.Println()
	fmt.Println(plotting.Line(fitCurve, "fitted curve", 80, 10))

	if plotPath != "" {
		series := []plotting.Series{
			{Name: "data", Ys: values},
			{Name: "fit", Ys: fitCurve},
		}
		if err := plotting.SaveLines(plotPath, "damped sine fit", "t", "y", times, series); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

func runInterp(cmd *cobra.Command, args []string) error {
	if knots < 3 {
		return fmt.Errorf("need at least 3 knots, got %d", knots)
	}

	x0, x1 := 0.0, 2*math.Pi
	xs, ys := curve.SampleFunc(math.Sin, x0, x1, knots)

	kinds := []curve.Kind{curve.Linear, curve.Akima, curve.Cubic}
	if kind != "" {
		kinds = []curve.Kind{curve.Kind(kind)}
	}

	if dense < 10 {
		return fmt.Errorf("need at least 10 dense samples, got %d", dense)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tMAX ERROR")

	var series []plotting.Series
	var denseXs []float64
	for _, k := range kinds {
		p, err := curve.Interpolate(xs, ys, k)
		if err != nil {
			return err
		}
		maxErr := curve.MaxError(p, math.Sin, x0, x1, dense)
		fmt.Fprintf(w, "%s\t%.3g\n", k, maxErr)

		gx, gy := curve.Resample(p, x0, x1, dense)
		denseXs = gx
		series = append(series, plotting.Series{Name: string(k), Ys: gy})
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%d knots of sin(x) over [0, 2π]\n", knots)
	fmt.Println(plotting.Scatter(xs, ys, 60, 12, "knots"))

	if plotPath != "" {
		truthYs := make([]float64, len(denseXs))
		for i, x := range denseXs {
			truthYs[i] = math.Sin(x)
		}
		series = append(series, plotting.Series{Name: "sin", Ys: truthYs})
		if err := plotting.SaveLines(plotPath, "interpolation", "x", "y", denseXs, series); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

// parseParams turns "mu=0,sigma=2" into a parameter map.
func parseParams(s string) (map[string]float64, error) {
	params := make(map[string]float64)
	if s == "" {
		return params, nil
	}
	for _, pair := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("bad parameter %q, want key=value", pair)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad parameter value %q: %w", val, err)
		}
		params[key] = f
	}
	return params, nil
}

func runDist(cmd *cobra.Command, args []string) error {
	name := "normal"
	if len(args) > 0 {
		name = args[0]
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) == 0 && cfg.Dist.Name != "" {
			name = cfg.Dist.Name
		}
		if !cmd.Flags().Changed("draws") {
			draws = cfg.Dist.Draws
		}
		if !cmd.Flags().Changed("bins") {
			bins = cfg.Dist.Bins
		}
		if !cmd.Flags().Changed("seed") {
			seed = cfg.Dist.Seed
		}
	}

	params, err := parseParams(distParams)
	if err != nil {
		return err
	}

	dist, err := stats.New(name, params, seed)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, stats.DistributionNames())
	}

	samples := stats.Sample(dist, draws)
	summary := stats.Summarize(samples)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "distribution\t%s\n", name)
	fmt.Fprintf(w, "draws\t%d\n", summary.N)
	fmt.Fprintf(w, "mean\t%.4f\n", summary.Mean)
	fmt.Fprintf(w, "stddev\t%.4f\n", summary.StdDev)
	fmt.Fprintf(w, "min\t%.4f\n", summary.Min)
	fmt.Fprintf(w, "q1\t%.4f\n", summary.Q1)
	fmt.Fprintf(w, "median\t%.4f\n", summary.Median)
	fmt.Fprintf(w, "q3\t%.4f\n", summary.Q3)
	fmt.Fprintf(w, "max\t%.4f\n", summary.Max)
	if err := w.Flush(); err != nil {
		return err
	}

	histBins := stats.Histogram(samples, bins)
	fmt.Println()
	fmt.Print(plotting.HistogramBars(histBins, 50))

	grid := stats.Grid(dist, summary.Min, summary.Max, 200)
	pdf := make([]float64, len(grid))
	for i, g := range grid {
		pdf[i] = g.PDF
	}
	fmt.Println()
	fmt.Println(plotting.Line(pdf, "pdf", 60, 8))

	if plotPath != "" {
		if err := plotting.SaveHistogram(plotPath, name, samples, bins); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

func runKS(cmd *cobra.Command, args []string) error {
	pa, err := parseParams(paramsA)
	if err != nil {
		return err
	}
	pb, err := parseParams(paramsB)
	if err != nil {
		return err
	}

	da, err := stats.New(distA, pa, seed)
	if err != nil {
		return err
	}
	db, err := stats.New(distB, pb, seed+1)
	if err != nil {
		return err
	}

	sa := stats.Sample(da, draws)
	sb := stats.Sample(db, draws)
	d := stats.KolmogorovSmirnov(sa, sb)

	fmt.Printf("ks statistic: %.4f (%s vs %s, %d draws each)\n", d, distA, distB, draws)
	return nil
}

func runTTest(cmd *cobra.Command, args []string) error {
	da, err := stats.New("normal", map[string]float64{"mu": muA, "sigma": sigma}, seed)
	if err != nil {
		return err
	}
	db, err := stats.New("normal", map[string]float64{"mu": muB, "sigma": sigma}, seed+1)
	if err != nil {
		return err
	}

	sa := stats.Sample(da, draws)
	sb := stats.Sample(db, draws)

	result, err := stats.WelchTTest(sa, sb)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "t statistic\t%.4f\n", result.T)
	fmt.Fprintf(w, "df\t%.1f\n", result.DF)
	fmt.Fprintf(w, "p value\t%.4g\n", result.P)
	if result.P < 0.05 {
		fmt.Fprintln(w, "verdict\tmeans differ at the 5% level")
	} else {
		fmt.Fprintln(w, "verdict\tno significant difference at the 5% level")
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEMO\tMODEL\tTIME\tDURATION\tDT\tMETHOD")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Demo,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Method,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "demo\t%s\n", meta.Demo)
	if meta.Model != "" {
		fmt.Fprintf(w, "model\t%s\n", meta.Model)
	}
	if meta.Method != "" {
		fmt.Fprintf(w, "method\t%s\n", meta.Method)
	}
	fmt.Fprintf(w, "time\t%s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	for name, val := range meta.Summary {
		fmt.Fprintf(w, "%s\t%.6g\n", name, val)
	}
	return w.Flush()
}

func replotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, labels, columns, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(times))

	for i, label := range labels {
		fmt.Println(plotting.Line(columns[i], label, 80, 10))
		fmt.Println()
	}

	if plotPath != "" {
		series := make([]plotting.Series, len(labels))
		for i, label := range labels {
			series[i] = plotting.Series{Name: label, Ys: columns[i]}
		}
		if err := plotting.SaveLines(plotPath, meta.ID, "t", "value", times, series); err != nil {
			return err
		}
		fmt.Printf("chart saved: %s\n", plotPath)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, labels, columns, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, labels...)); err != nil {
		return err
	}
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, col := range columns {
			if i < len(col) {
				row = append(row, strconv.FormatFloat(col[i], 'f', 6, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, labels, columns, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, times, labels, columns)
}

// resolveInitState falls back to the model default when no state was given.
func resolveInitState(sys ode.System, given []float64, model string) (ode.State, error) {
	if len(given) > 0 {
		if len(given) != sys.Dim() {
			return nil, fmt.Errorf("model %s needs %d state values, got %d", model, sys.Dim(), len(given))
		}
		return ode.State(given), nil
	}
	if d, ok := sys.(ode.Defaulter); ok {
		return d.DefaultState(), nil
	}
	return nil, fmt.Errorf("model %s needs an initial state", model)
}
