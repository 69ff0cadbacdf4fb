package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultRate     = 256.0
	DefaultSamples  = 1024
	DefaultBins     = 20
	DefaultDraws    = 2000
)

// Config collects every knob a demo can read from file. CLI flags override
// config values; config values override preset values.
type Config struct {
	Model     string       `yaml:"model"`
	Method    string       `yaml:"method"`
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
	InitState []float64    `yaml:"init_state"`
	Signal    SignalConfig `yaml:"signal"`
	Dist      DistConfig   `yaml:"dist"`
}

// SignalConfig parameterizes the fft demo's synthetic signal.
type SignalConfig struct {
	Freqs   []float64 `yaml:"freqs"`
	Rate    float64   `yaml:"rate"`
	Samples int       `yaml:"samples"`
	Noise   float64   `yaml:"noise"`
	Backend string    `yaml:"backend"`
}

// DistConfig parameterizes the stats demos.
type DistConfig struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params"`
	Draws  int                `yaml:"draws"`
	Bins   int                `yaml:"bins"`
	Seed   uint64             `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "pendulum",
		Method:   "rk4",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Signal: SignalConfig{
			Freqs:   []float64{10.0},
			Rate:    DefaultRate,
			Samples: DefaultSamples,
			Backend: "gonum",
		},
		Dist: DistConfig{
			Name:  "normal",
			Draws: DefaultDraws,
			Bins:  DefaultBins,
			Seed:  1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
