package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wjlewis/lagrangian/internal/mechanics"
	"github.com/wjlewis/lagrangian/internal/optim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "bowl" {
		t.Errorf("expected problem bowl, got %s", cfg.Problem)
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if cfg.Optimizer.MaxIter != optim.DefaultMaxIter {
		t.Errorf("expected max_iter %d, got %d", optim.DefaultMaxIter, cfg.Optimizer.MaxIter)
	}
	if cfg.Mechanics.Knots < 2 {
		t.Error("default knots should leave a usable simplex")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("problem: rosenbrock\noptimizer:\n  epsilon: 1.0e-8\n  max_iter: 200\nstart:\n  center: [-1.2, 1]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Problem != "rosenbrock" {
		t.Errorf("expected rosenbrock, got %s", cfg.Problem)
	}
	if cfg.Optimizer.Epsilon != 1e-8 || cfg.Optimizer.MaxIter != 200 {
		t.Errorf("optimizer not loaded: %+v", cfg.Optimizer)
	}
	if cfg.Optimizer.Alpha != optim.DefaultAlpha {
		t.Errorf("alpha should keep its default, got %f", cfg.Optimizer.Alpha)
	}
	if len(cfg.Start.Center) != 2 || cfg.Start.Size != DefaultSimplexSize {
		t.Errorf("start not loaded: %+v", cfg.Start)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Mechanics.Flat = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Mechanics.Flat {
		t.Error("flat flag lost in round trip")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Optimizer.Gamma = 3

	o := cfg.Options()
	if o.Gamma != 3 || o.Alpha != optim.DefaultAlpha {
		t.Errorf("unexpected options %+v", o)
	}
}

func TestMechanicsProblem(t *testing.T) {
	cfg := GetPreset("oscillator", "stiff")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	p := cfg.MechanicsProblem(mechanics.FreeParticle(1))

	if p.Knots != 4 || p.T1 != 0.75 || p.Step != 0.02 {
		t.Errorf("unexpected problem %+v", p)
	}
	if len(p.Times()) != 6 {
		t.Errorf("expected 6 knot times, got %d", len(p.Times()))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rosenbrock", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Start.Center[0] != -1.2 {
		t.Errorf("expected center x -1.2, got %f", cfg.Start.Center[0])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("rosenbrock", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("oscillator"); len(presets) != 4 {
		t.Errorf("expected 4 oscillator presets, got %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestOverlay(t *testing.T) {
	base := DefaultConfig()
	merged := base.Overlay(GetPreset("rosenbrock", "loose"))

	if merged.Problem != "rosenbrock" {
		t.Errorf("expected rosenbrock, got %s", merged.Problem)
	}
	if merged.Optimizer.Epsilon != 1e-6 || merged.Optimizer.MaxIter != 500 {
		t.Errorf("optimizer overlay failed: %+v", merged.Optimizer)
	}
	if merged.Optimizer.Gamma != optim.DefaultGamma {
		t.Errorf("gamma should keep its default, got %f", merged.Optimizer.Gamma)
	}
	if merged.Rule != DefaultRule {
		t.Errorf("rule should keep its default, got %s", merged.Rule)
	}
	if base.Problem != DefaultProblem {
		t.Error("overlay mutated the base config")
	}

	osc := base.Overlay(GetPreset("oscillator", "flat"))
	if !osc.Mechanics.Flat || osc.Step != 0.05 {
		t.Errorf("mechanics overlay failed: %+v", osc.Mechanics)
	}

	if same := base.Overlay(nil); same.Problem != base.Problem {
		t.Error("nil overlay should copy the base")
	}
}
