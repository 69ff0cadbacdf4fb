// Package minimize wraps gonum/optimize for the optimization demos.
//
// The package contributes nothing algorithmic: it registers a few classic
// test objectives, forwards them to gonum's minimizers, and repackages the
// result for printing.
package minimize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

type Result struct {
	X           []float64
	F           float64
	GradNorm    float64
	Iterations  int
	Evaluations int
	Status      string
}

// Run minimizes obj from x0 with the named method (bfgs or neldermead).
func Run(obj Objective, x0 []float64, method string) (*Result, error) {
	if len(x0) != obj.Dim {
		return nil, fmt.Errorf("minimize: %s expects %d variables, got %d", obj.Name, obj.Dim, len(x0))
	}

	problem := optimize.Problem{
		Func: obj.Func,
		Grad: obj.Grad,
	}

	var m optimize.Method
	switch method {
	case "bfgs", "":
		m = &optimize.BFGS{}
	case "neldermead":
		m = &optimize.NelderMead{}
	default:
		return nil, fmt.Errorf("minimize: unknown method: %s", method)
	}

	res, err := optimize.Minimize(problem, x0, nil, m)
	if err != nil {
		return nil, fmt.Errorf("minimize: %s on %s: %w", method, obj.Name, err)
	}

	out := &Result{
		X:           res.X,
		F:           res.F,
		Iterations:  res.Stats.MajorIterations,
		Evaluations: res.Stats.FuncEvaluations,
		Status:      res.Status.String(),
	}
	if len(res.Gradient) > 0 {
		out.GradNorm = floats.Norm(res.Gradient, 2)
	}
	return out, nil
}
