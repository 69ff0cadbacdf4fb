package demo

import (
	"context"
	"fmt"

	"github.com/san-kum/numlab/internal/ode"
	"github.com/san-kum/numlab/internal/storage"
)

type RunConfig struct {
	Model     string
	Method    string
	InitState []float64
	Dt        float64
	Duration  float64
	Adaptive  bool
	Tolerance float64
}

type RunResult struct {
	Result *ode.Result
	Labels []string
	Model  string
	Method string
}

// RunODE resolves a model and a stepper by name and integrates the system.
// An empty InitState falls back to the model's default initial condition.
func (r *Registry) RunODE(ctx context.Context, cfg RunConfig) (*RunResult, error) {
	sys, err := r.GetModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	stepper, err := r.GetStepper(cfg.Method)
	if err != nil {
		return nil, err
	}

	var x0 ode.State
	if len(cfg.InitState) > 0 {
		x0 = ode.State(cfg.InitState).Clone()
	} else if d, ok := sys.(ode.Defaulter); ok {
		x0 = d.DefaultState()
	} else {
		return nil, fmt.Errorf("model %s needs an initial state", cfg.Model)
	}

	odeCfg := ode.DefaultConfig()
	if cfg.Dt > 0 {
		odeCfg.Dt = cfg.Dt
	}
	if cfg.Duration > 0 {
		odeCfg.Duration = cfg.Duration
	}
	if cfg.Tolerance > 0 {
		odeCfg.Tolerance = cfg.Tolerance
	}
	odeCfg.Adaptive = cfg.Adaptive || cfg.Method == "rk45"

	result, err := ode.Solve(ctx, sys, stepper, x0, odeCfg)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		Result: result,
		Labels: r.Labels(cfg.Model, sys.Dim()),
		Model:  cfg.Model,
		Method: cfg.Method,
	}, nil
}

// SaveRun persists an integration result under the demo name "ode".
func SaveRun(store *storage.Store, cfg RunConfig, run *RunResult) (string, error) {
	columns := make([][]float64, len(run.Labels))
	for i := range columns {
		columns[i] = run.Result.Column(i)
	}

	meta := storage.RunMetadata{
		Demo:     "ode",
		Model:    run.Model,
		Method:   run.Method,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Summary: map[string]float64{
			"steps":        float64(run.Result.StepsTaken),
			"energy_drift": run.Result.EnergyDrift,
		},
	}

	return store.Save(meta, run.Result.Times, run.Labels, columns)
}
