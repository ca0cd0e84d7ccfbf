// Package solver implements the two-period consumption-saving problem by
// backward induction: solve the terminal period on its cash-on-hand grid,
// interpolate the resulting value function, then solve period 1 against the
// discounted expected continuation value.
package solver

import (
	"errors"
	"fmt"
	"runtime"

	"consav/internal/interp"
	"consav/internal/model"
	"consav/internal/optimize"
)

// Options controls grid sizing and the per-point optimizer.
// Zero values fall back to the reference defaults.
type Options struct {
	GridM2 model.GridSpec
	GridM1 model.GridSpec

	// FloorC2/FloorC1 are the lower consumption bounds per period. Strictly
	// positive floors keep the CRRA utility away from its singularity at 0.
	FloorC2 float64
	FloorC1 float64

	// Workers is the size of the grid-point worker pool.
	Workers int

	// Opt tunes each scalar solve (tolerance, iteration cap).
	Opt optimize.Options
}

const (
	defaultFloorC2 = 1e-8
	defaultFloorC1 = 1e-12
)

func (o Options) withDefaults() Options {
	if o.GridM2.Points == 0 {
		o.GridM2 = model.DefaultGridM2
	}
	if o.GridM1.Points == 0 {
		o.GridM1 = model.DefaultGridM1
	}
	if o.FloorC2 <= 0 {
		o.FloorC2 = defaultFloorC2
	}
	if o.FloorC1 <= 0 {
		o.FloorC1 = defaultFloorC1
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Result bundles both period solutions. Period1.C over Period1.M is the
// consumption policy the simulator interpolates.
type Result struct {
	Period1 *model.Solution
	Period2 *model.Solution
}

type Engine struct {
	params model.Params
	opts   Options
}

// New validates the parameter bundle up front; invalid parameters surface
// here as configuration errors, never as numerical singularities mid-solve.
func New(params model.Params, opts Options) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return &Engine{params: params, opts: opts.withDefaults()}, nil
}

func (e *Engine) Params() model.Params { return e.params }

// Solve runs the full horizon: period 2, value interpolation, period 1.
func (e *Engine) Solve() (*Result, error) {
	p2, err := e.SolvePeriod2()
	if err != nil {
		return nil, fmt.Errorf("period 2: %w", err)
	}
	v2, err := interp.NewLinear(p2.M, p2.V)
	if err != nil {
		return nil, fmt.Errorf("period-2 value interpolant: %w", err)
	}
	p1, err := e.SolvePeriod1(v2)
	if err != nil {
		return nil, fmt.Errorf("period 1: %w", err)
	}
	return &Result{Period1: p1, Period2: p2}, nil
}

// SolvePeriod2 maximizes utility(c2) + bequest(m2, c2) at every grid point.
// The upper bound c2 <= m2 keeps the bequest argument at least Kappa.
func (e *Engine) SolvePeriod2() (*model.Solution, error) {
	grid, err := e.opts.GridM2.Build()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	p := e.params
	floor := e.opts.FloorC2
	return e.solveGrid(grid, func(m2 float64) (optimize.Result, error) {
		obj := func(c2 float64) float64 {
			return p.Utility(c2) + p.Bequest(m2, c2)
		}
		o := e.opts.Opt
		o.X0 = m2 / 2
		return optimize.Maximize(obj, floor, m2, o)
	})
}

// SolvePeriod1 maximizes utility(c1) plus the discounted expected
// continuation value under the two-state income shock. The upper bound
// m1 + (1-Delta)/(1+R) keeps period-2 cash-on-hand non-negative even in the
// low-income state.
func (e *Engine) SolvePeriod1(v2 *interp.Linear) (*model.Solution, error) {
	if v2 == nil {
		return nil, errors.New("period-2 value interpolant is nil")
	}
	grid, err := e.opts.GridM1.Build()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	p := e.params
	floor := e.opts.FloorC1
	buffer := (1 - p.Delta) / (1 + p.R)
	return e.solveGrid(grid, func(m1 float64) (optimize.Result, error) {
		obj := func(c1 float64) float64 {
			saved := (1 + p.R) * (m1 - c1)
			vLow := v2.Eval(saved + 1 - p.Delta)
			vHigh := v2.Eval(saved + 1 + p.Delta)
			return p.Utility(c1) + p.Beta*(p.PLow*vLow+p.PHigh*vHigh)
		}
		o := e.opts.Opt
		o.X0 = m1 / 2
		return optimize.Maximize(obj, floor, m1+buffer, o)
	})
}
