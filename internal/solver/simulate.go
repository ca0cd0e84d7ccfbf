package solver

import (
	"fmt"

	"consav/internal/sim"
)

// Simulate solves the model at the engine's parameters and evaluates the
// period-1 consumption policy at each wealth draw. The policy interpolant
// is rebuilt on every call; nothing is cached across solves.
func (e *Engine) Simulate(draws []float64) ([]float64, error) {
	res, err := e.Solve()
	if err != nil {
		return nil, err
	}
	s, err := sim.New(res.Period1)
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	return s.Consumption(draws), nil
}
