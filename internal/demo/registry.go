// Package demo wires models, steppers, and storage into runnable demos.
package demo

import (
	"fmt"
	"sort"

	"github.com/san-kum/numlab/internal/models"
	"github.com/san-kum/numlab/internal/ode"
)

type Registry struct {
	models   map[string]func() ode.System
	steppers map[string]func() ode.Stepper
	labels   map[string][]string
}

func NewRegistry() *Registry {
	r := &Registry{
		models:   make(map[string]func() ode.System),
		steppers: make(map[string]func() ode.Stepper),
		labels:   make(map[string][]string),
	}

	r.models["pendulum"] = func() ode.System { return models.NewPendulum() }
	r.models["harmonic"] = func() ode.System { return models.NewHarmonic() }
	r.models["vanderpol"] = func() ode.System { return models.NewVanDerPol() }
	r.models["lorenz"] = func() ode.System { return models.NewLorenz() }
	r.models["lotka"] = func() ode.System { return models.NewLotkaVolterra() }

	r.labels["pendulum"] = []string{"theta", "omega"}
	r.labels["harmonic"] = []string{"x", "v"}
	r.labels["vanderpol"] = []string{"x", "v"}
	r.labels["lorenz"] = []string{"x", "y", "z"}
	r.labels["lotka"] = []string{"prey", "predator"}

	r.steppers["euler"] = func() ode.Stepper { return ode.NewEuler() }
	r.steppers["rk4"] = func() ode.Stepper { return ode.NewRK4() }
	r.steppers["rk45"] = func() ode.Stepper { return ode.NewRK45() }

	return r
}

func (r *Registry) GetModel(name string) (ode.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetStepper(name string) (ode.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

// Labels returns the state variable names for a model, or x0..xN-1
// placeholders for dimensions without a registered name.
func (r *Registry) Labels(name string, dim int) []string {
	if labels, ok := r.labels[name]; ok && len(labels) == dim {
		return labels
	}
	labels := make([]string, dim)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i)
	}
	return labels
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
