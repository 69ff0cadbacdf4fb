package demo

import (
	"context"
	"testing"

	"github.com/san-kum/numlab/internal/storage"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"pendulum", "harmonic", "vanderpol", "lorenz", "lotka"} {
		sys, err := r.GetModel(name)
		if err != nil {
			t.Errorf("model %s: %v", name, err)
			continue
		}
		if sys.Dim() < 2 {
			t.Errorf("model %s: suspicious dim %d", name, sys.Dim())
		}
	}

	for _, name := range []string{"euler", "rk4", "rk45"} {
		if _, err := r.GetStepper(name); err != nil {
			t.Errorf("stepper %s: %v", name, err)
		}
	}

	if _, err := r.GetModel("nope"); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := r.GetStepper("nope"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestLabels(t *testing.T) {
	r := NewRegistry()

	labels := r.Labels("pendulum", 2)
	if labels[0] != "theta" || labels[1] != "omega" {
		t.Errorf("unexpected pendulum labels: %v", labels)
	}

	labels = r.Labels("mystery", 3)
	if len(labels) != 3 || labels[2] != "x2" {
		t.Errorf("unexpected fallback labels: %v", labels)
	}
}

func TestListSorted(t *testing.T) {
	r := NewRegistry()

	names := r.ListModels()
	if len(names) != 5 {
		t.Fatalf("expected 5 models, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("models not sorted: %v", names)
		}
	}

	if len(r.ListSteppers()) != 3 {
		t.Errorf("expected 3 steppers, got %v", r.ListSteppers())
	}
}

func TestRunODE(t *testing.T) {
	r := NewRegistry()

	run, err := r.RunODE(context.Background(), RunConfig{
		Model:    "harmonic",
		Method:   "rk4",
		Dt:       0.01,
		Duration: 1.0,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(run.Result.Times) != len(run.Result.States) {
		t.Error("times and states out of sync")
	}
	if len(run.Result.Times) < 100 {
		t.Errorf("expected ~100 samples, got %d", len(run.Result.Times))
	}
	if len(run.Labels) != 2 {
		t.Errorf("expected 2 labels, got %v", run.Labels)
	}

	// Default initial state is (1, 0); energy should be conserved.
	if run.Result.EnergyDrift > 1e-6 {
		t.Errorf("energy drift too large: %g", run.Result.EnergyDrift)
	}
}

func TestRunODEUnknowns(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	if _, err := r.RunODE(ctx, RunConfig{Model: "nope", Method: "rk4"}); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := r.RunODE(ctx, RunConfig{Model: "pendulum", Method: "nope"}); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestSaveRun(t *testing.T) {
	r := NewRegistry()

	cfg := RunConfig{Model: "pendulum", Method: "rk4", Dt: 0.01, Duration: 0.5}
	run, err := r.RunODE(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	store := storage.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	runID, err := SaveRun(store, cfg, run)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	times, labels, columns, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(times) != len(run.Result.Times) {
		t.Errorf("expected %d samples, got %d", len(run.Result.Times), len(times))
	}
	if len(labels) != 2 || labels[0] != "theta" {
		t.Errorf("labels mangled: %v", labels)
	}
	if len(columns) != 2 {
		t.Errorf("expected 2 columns, got %d", len(columns))
	}
}
