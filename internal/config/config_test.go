package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validConfigYAML = `
model:
  rho: 2.0
  nu: 0.1
  kappa: 0.5
  beta: 0.95
  r: 0.02
  delta: 0.5
  p_low: 0.5
  p_high: 0.5
grids:
  m2: {min: 1.0e-4, max: 5.0, points: 200}
  m1: {min: 1.0e-8, max: 4.0, points: 50}
solver:
  xtol: 1.0e-9
  max_iterations: 300
  workers: 2
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", validConfigYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if deref(cfg.Model.Rho) != 2.0 || deref(cfg.Model.Beta) != 0.95 {
		t.Errorf("model fields not loaded: %+v", cfg.Model)
	}
	opts := cfg.ToSolverOptions()
	if opts.GridM2.Points != 200 || opts.GridM1.Points != 50 {
		t.Errorf("grid points = %d/%d, want 200/50", opts.GridM2.Points, opts.GridM1.Points)
	}
	if opts.Opt.XTol != 1e-9 || opts.Opt.MaxIter != 300 {
		t.Errorf("optimizer options not mapped: %+v", opts.Opt)
	}
	if opts.Workers != 2 {
		t.Errorf("workers = %d, want 2", opts.Workers)
	}
}

func TestLoadDefaultsPHigh(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
model:
  rho: 2.0
  nu: 0.1
  kappa: 0.5
  beta: 0.95
  r: 0.02
  delta: 0.5
  p_low: 0.4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.PHigh == nil || math.Abs(*cfg.Model.PHigh-0.6) > 1e-12 {
		t.Errorf("PHigh = %v, want complement 0.6", cfg.Model.PHigh)
	}
}

func TestLoadRejectsInvalidModel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
model:
  rho: 1.0
  nu: 0.1
  kappa: 0.5
  beta: 0.95
  p_low: 0.5
  p_high: 0.5
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for rho=1")
	}
}

func TestLoadMergesPresetFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
model:
  name: Preset
  rho: 3.0
  nu: 0.2
  kappa: 0.5
  beta: 0.9
  r: 0.01
  delta: 0.25
  p_low: 0.5
  p_high: 0.5
`)
	path := writeFile(t, dir, "config.yaml", `
preset_file: preset.yaml
model:
  beta: 0.99
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Overridden field comes from the config, the rest from the preset.
	if deref(cfg.Model.Beta) != 0.99 {
		t.Errorf("Beta = %g, want override 0.99", deref(cfg.Model.Beta))
	}
	if deref(cfg.Model.Rho) != 3.0 || deref(cfg.Model.Delta) != 0.25 {
		t.Errorf("preset fields lost: %+v", cfg.Model)
	}
}

func TestLoadOverridesPresetWithZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
model:
  rho: 2.0
  nu: 0.1
  kappa: 0.5
  beta: 0.95
  r: 0.02
  delta: 0.5
  p_low: 0.5
  p_high: 0.5
`)
	path := writeFile(t, dir, "config.yaml", `
preset_file: preset.yaml
model:
  nu: 0
  delta: 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Explicit zeros must win over the preset values.
	if cfg.Model.Nu == nil || *cfg.Model.Nu != 0 {
		t.Errorf("Nu = %v, want explicit 0", cfg.Model.Nu)
	}
	if cfg.Model.Delta == nil || *cfg.Model.Delta != 0 {
		t.Errorf("Delta = %v, want explicit 0", cfg.Model.Delta)
	}
	if deref(cfg.Model.Rho) != 2.0 {
		t.Errorf("preset fields lost: %+v", cfg.Model)
	}
}

func TestMergeModel(t *testing.T) {
	base := ModelConfig{
		Name: "base",
		Rho:  Float64(2), Nu: Float64(0.1), Kappa: Float64(0.5), Beta: Float64(0.95),
		R: Float64(0.02), Delta: Float64(0.5), PLow: Float64(0.5), PHigh: Float64(0.5),
	}
	override := ModelConfig{Rho: Float64(3), Beta: Float64(0.9), Nu: Float64(0)}
	out := MergeModel(base, override)
	if deref(out.Rho) != 3 || deref(out.Beta) != 0.9 {
		t.Errorf("overrides not applied: %+v", out)
	}
	if out.Nu == nil || *out.Nu != 0 {
		t.Errorf("explicit zero override lost: %v", out.Nu)
	}
	if deref(out.Kappa) != 0.5 || out.Name != "base" {
		t.Errorf("base fields lost: %+v", out)
	}
	if deref(out.Delta) != 0.5 {
		t.Errorf("absent override clobbered base Delta: %+v", out)
	}
}

func TestValidateNil(t *testing.T) {
	var c *Config
	if err := c.Validate(); err == nil {
		t.Errorf("expected error for nil config")
	}
}
