package models

// SolveRequest represents the request body for solving the model
type SolveRequest struct {
	Config  SolveConfig  `json:"config" binding:"required"`
	Options SolveOptions `json:"options,omitempty"`
}

// SolveConfig contains model, grid, and solver configuration
type SolveConfig struct {
	PresetFile string       `json:"preset_file,omitempty"`
	Model      ModelConfig  `json:"model,omitempty"`
	Grids      GridsConfig  `json:"grids,omitempty"`
	Solver     SolverConfig `json:"solver,omitempty"`
}

// ModelConfig defines the consumption-saving model parameters. Numeric
// fields are pointers so an explicit zero (e.g. "nu": 0) survives merging
// against a preset or base config instead of reading as "not set".
type ModelConfig struct {
	Name  string   `json:"name,omitempty"`
	Rho   *float64 `json:"rho,omitempty"`
	Nu    *float64 `json:"nu,omitempty"`
	Kappa *float64 `json:"kappa,omitempty"`
	Beta  *float64 `json:"beta,omitempty"`
	R     *float64 `json:"r,omitempty"`
	Delta *float64 `json:"delta,omitempty"`
	PLow  *float64 `json:"p_low,omitempty"`
	PHigh *float64 `json:"p_high,omitempty"`
}

// GridsConfig defines the cash-on-hand grids per period
type GridsConfig struct {
	M2 GridConfig `json:"m2,omitempty"`
	M1 GridConfig `json:"m1,omitempty"`
}

// GridConfig defines one grid; zero points means "use the default grid"
type GridConfig struct {
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Points int     `json:"points,omitempty"`
}

// SolverConfig tunes the per-point optimizer
type SolverConfig struct {
	XTol          float64 `json:"xtol,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Workers       int     `json:"workers,omitempty"`
	FloorC2       float64 `json:"floor_c2,omitempty"`
	FloorC1       float64 `json:"floor_c1,omitempty"`
}

// SolveOptions contains optional solve parameters
type SolveOptions struct {
	IncludeArrays bool `json:"include_arrays,omitempty"` // default: false (summaries only)
}

// SimulateRequest represents a request to solve and simulate consumption
// for a caller-supplied sample of initial wealth
type SimulateRequest struct {
	Config        SolveConfig `json:"config" binding:"required"`
	InitialWealth []float64   `json:"initial_wealth" binding:"required"`
}

// CompareRequest represents a request to compare parameter variations
type CompareRequest struct {
	BaseConfig    SolveConfig      `json:"base_config" binding:"required"`
	InitialWealth []float64        `json:"initial_wealth" binding:"required"`
	Variations    []SolveVariation `json:"variations" binding:"required"`
}

// SolveVariation defines a variation to test; non-zero model fields
// override the base config
type SolveVariation struct {
	Name  string      `json:"name" binding:"required"`
	Model ModelConfig `json:"model,omitempty"`
}
