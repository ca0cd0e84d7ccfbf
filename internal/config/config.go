package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"consav/internal/model"
	"consav/internal/optimize"
	"consav/internal/solver"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load model parameters from a separate YAML preset
	// (e.g. examples/presets/*.yaml). If both PresetFile and Model are
	// provided, Model overrides PresetFile field by field.
	PresetFile string       `yaml:"preset_file"`
	Model      ModelConfig  `yaml:"model"`
	Grids      GridsConfig  `yaml:"grids"`
	Solver     SolverConfig `yaml:"solver"`
}

// ModelConfig holds the model parameters as they appear in YAML. Numeric
// fields are pointers so an explicit zero (e.g. nu: 0 for no bequest motive)
// is distinguishable from an absent field when merging overrides.
type ModelConfig struct {
	Name  string   `yaml:"name"`
	Rho   *float64 `yaml:"rho"`
	Nu    *float64 `yaml:"nu"`
	Kappa *float64 `yaml:"kappa"`
	Beta  *float64 `yaml:"beta"`
	R     *float64 `yaml:"r"`
	Delta *float64 `yaml:"delta"`
	PLow  *float64 `yaml:"p_low"`
	PHigh *float64 `yaml:"p_high"`
}

// Float64 returns a pointer to v, for building model overrides in code.
func Float64(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

type GridsConfig struct {
	M2 GridConfig `yaml:"m2"`
	M1 GridConfig `yaml:"m1"`
}

type GridConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

type SolverConfig struct {
	XTol          float64 `yaml:"xtol"`
	MaxIterations int     `yaml:"max_iterations"`
	Workers       int     `yaml:"workers"`
	FloorC2       float64 `yaml:"floor_c2"`
	FloorC1       float64 `yaml:"floor_c1"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If p_high is not provided, default it to the complement of p_low.
	// This keeps configs concise: most presets only state p_low.
	if c.Model.PHigh == nil && c.Model.PLow != nil {
		c.Model.PHigh = Float64(1 - *c.Model.PLow)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If preset_file is set, load it and merge in any explicit overrides from c.Model.
	if c.PresetFile != "" {
		presetPath := c.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		loaded, err := loadPresetFile(presetPath)
		if err != nil {
			return nil, err
		}
		c.Model = MergeModel(loaded, c.Model)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate model parameters by constructing a solver engine.
	if _, err := solver.New(c.Model.ToParams(), c.ToSolverOptions()); err != nil {
		return fmt.Errorf("model config invalid: %w", err)
	}
	return nil
}

// ToParams resolves the config to concrete parameters; absent fields become
// zero and are caught by parameter validation.
func (m ModelConfig) ToParams() model.Params {
	return model.Params{
		Rho:   deref(m.Rho),
		Nu:    deref(m.Nu),
		Kappa: deref(m.Kappa),
		Beta:  deref(m.Beta),
		R:     deref(m.R),
		Delta: deref(m.Delta),
		PLow:  deref(m.PLow),
		PHigh: deref(m.PHigh),
	}
}

// ToSolverOptions maps the config onto solver options. Grids left at zero
// points fall back to the solver's reference defaults.
func (c *Config) ToSolverOptions() solver.Options {
	return solver.Options{
		GridM2:  c.Grids.M2.toSpec(),
		GridM1:  c.Grids.M1.toSpec(),
		FloorC2: c.Solver.FloorC2,
		FloorC1: c.Solver.FloorC1,
		Workers: c.Solver.Workers,
		Opt: optimize.Options{
			XTol:    c.Solver.XTol,
			MaxIter: c.Solver.MaxIterations,
		},
	}
}

func (g GridConfig) toSpec() model.GridSpec {
	return model.GridSpec{Min: g.Min, Max: g.Max, Points: g.Points}
}

type presetFileWrapper struct {
	Model ModelConfig `yaml:"model"`
}

func loadPresetFile(path string) (ModelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ModelConfig{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ModelConfig{}, err
	}
	return w.Model, nil
}

// MergeModel overlays the fields set in override onto base. Absent (nil)
// fields keep the base value; an explicit zero overrides, so a variation can
// turn the bequest motive or the income shock off.
func MergeModel(base, override ModelConfig) ModelConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Rho != nil {
		out.Rho = override.Rho
	}
	if override.Nu != nil {
		out.Nu = override.Nu
	}
	if override.Kappa != nil {
		out.Kappa = override.Kappa
	}
	if override.Beta != nil {
		out.Beta = override.Beta
	}
	if override.R != nil {
		out.R = override.R
	}
	if override.Delta != nil {
		out.Delta = override.Delta
	}
	if override.PLow != nil {
		out.PLow = override.PLow
	}
	if override.PHigh != nil {
		out.PHigh = override.PHigh
	}
	return out
}
