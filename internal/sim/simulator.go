// Package sim maps externally supplied initial-wealth draws through a
// solved period-1 consumption policy. It generates no randomness of its
// own; the draw sequence is owned by the caller.
package sim

import (
	"errors"
	"fmt"

	"consav/internal/interp"
	"consav/internal/model"
)

// Simulator evaluates a consumption policy at arbitrary wealth levels,
// extrapolating linearly beyond the solved grid.
type Simulator struct {
	policy *interp.Linear
}

// New builds a policy interpolant from a period-1 solution's (M, C) pairs.
func New(period1 *model.Solution) (*Simulator, error) {
	if period1 == nil {
		return nil, errors.New("period-1 solution is nil")
	}
	policy, err := interp.NewLinear(period1.M, period1.C)
	if err != nil {
		return nil, fmt.Errorf("policy interpolant: %w", err)
	}
	return &Simulator{policy: policy}, nil
}

// Consumption returns one simulated consumption value per draw, in the
// draws' order.
func (s *Simulator) Consumption(draws []float64) []float64 {
	return s.policy.EvalMany(draws)
}
