package minimize

import "fmt"

// Objective is a named test function with an analytic gradient.
type Objective struct {
	Name string
	Dim  int
	Func func(x []float64) float64
	Grad func(grad, x []float64)
}

// Rosenbrock's banana valley, global minimum f=0 at (1, 1).
var Rosenbrock = Objective{
	Name: "rosenbrock",
	Dim:  2,
	Func: func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	},
	Grad: func(grad, x []float64) {
		grad[0] = -2*(1-x[0]) - 400*x[0]*(x[1]-x[0]*x[0])
		grad[1] = 200 * (x[1] - x[0]*x[0])
	},
}

// Himmelblau's function, four global minima with f=0.
var Himmelblau = Objective{
	Name: "himmelblau",
	Dim:  2,
	Func: func(x []float64) float64 {
		a := x[0]*x[0] + x[1] - 11
		b := x[0] + x[1]*x[1] - 7
		return a*a + b*b
	},
	Grad: func(grad, x []float64) {
		a := x[0]*x[0] + x[1] - 11
		b := x[0] + x[1]*x[1] - 7
		grad[0] = 4*x[0]*a + 2*b
		grad[1] = 2*a + 4*x[1]*b
	},
}

// Sphere, the sanity check: f=0 at the origin.
var Sphere = Objective{
	Name: "sphere",
	Dim:  2,
	Func: func(x []float64) float64 {
		sum := 0.0
		for _, v := range x {
			sum += v * v
		}
		return sum
	},
	Grad: func(grad, x []float64) {
		for i, v := range x {
			grad[i] = 2 * v
		}
	},
}

var objectives = map[string]Objective{
	Rosenbrock.Name: Rosenbrock,
	Himmelblau.Name: Himmelblau,
	Sphere.Name:     Sphere,
}

// Lookup returns a registered objective by name.
func Lookup(name string) (Objective, error) {
	obj, ok := objectives[name]
	if !ok {
		return Objective{}, fmt.Errorf("minimize: unknown objective: %s", name)
	}
	return obj, nil
}

// Names lists the registered objectives.
func Names() []string {
	names := make([]string, 0, len(objectives))
	for name := range objectives {
		names = append(names, name)
	}
	return names
}
