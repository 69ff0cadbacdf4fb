package config

var Presets = map[string]map[string]*Config{
	"pendulum": {
		"small": {
			Model: "pendulum", Method: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{0.2, 0.0},
		},
		"large": {
			Model: "pendulum", Method: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{2.5, 0.0},
		},
		"spinning": {
			Model: "pendulum", Method: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: []float64{0.1, 8.0},
		},
	},
	"harmonic": {
		"unit": {
			Model: "harmonic", Method: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{1.0, 0.0},
		},
	},
	"vanderpol": {
		"limit_cycle": {
			Model: "vanderpol", Method: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: []float64{2.0, 0.0},
		},
		"relaxation": {
			Model: "vanderpol", Method: "rk45", Dt: 0.01, Duration: 60.0,
			InitState: []float64{0.5, 0.0},
		},
	},
	"lorenz": {
		"classic": {
			Model: "lorenz", Method: "rk4", Dt: 0.005, Duration: 40.0,
			InitState: []float64{1.0, 1.0, 1.0},
		},
		"nearby": {
			Model: "lorenz", Method: "rk4", Dt: 0.005, Duration: 40.0,
			InitState: []float64{1.0, 1.0, 1.0001},
		},
	},
	"lotka": {
		"cycles": {
			Model: "lotka", Method: "rk4", Dt: 0.01, Duration: 60.0,
			InitState: []float64{10.0, 10.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
