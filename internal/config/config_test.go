package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "pendulum" {
		t.Errorf("expected model pendulum, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Signal.Rate <= 0 {
		t.Error("sample rate should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitState[0] != 0.2 {
		t.Errorf("expected theta 0.2, got %f", cfg.InitState[0])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("pendulum", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("lorenz"); len(presets) == 0 {
		t.Error("expected presets for lorenz")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")

	cfg := DefaultConfig()
	cfg.Model = "lorenz"
	cfg.InitState = []float64{1, 2, 3}
	cfg.Signal.Freqs = []float64{5, 20}
	cfg.Dist.Name = "gamma"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Model != "lorenz" {
		t.Errorf("expected model lorenz, got %s", loaded.Model)
	}
	if len(loaded.InitState) != 3 || loaded.InitState[2] != 3 {
		t.Errorf("init state mangled: %v", loaded.InitState)
	}
	if len(loaded.Signal.Freqs) != 2 {
		t.Errorf("signal freqs mangled: %v", loaded.Signal.Freqs)
	}
	if loaded.Dist.Name != "gamma" {
		t.Errorf("dist name mangled: %s", loaded.Dist.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
