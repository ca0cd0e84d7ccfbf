package model

import (
	"errors"
	"fmt"
)

// Grid is an ordered sequence of cash-on-hand values, strictly increasing.
type Grid []float64

// Linspace builds an evenly spaced grid of n points on [lo, hi], endpoints
// included.
func Linspace(lo, hi float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", n)
	}
	if hi <= lo {
		return nil, fmt.Errorf("grid bounds must satisfy lo < hi, got [%g, %g]", lo, hi)
	}
	g := make(Grid, n)
	step := (hi - lo) / float64(n-1)
	for i := range g {
		g[i] = lo + float64(i)*step
	}
	// Pin the endpoint to avoid float drift in the last step.
	g[n-1] = hi
	return g, nil
}

func (g Grid) Validate() error {
	if len(g) < 2 {
		return errors.New("grid needs at least 2 points")
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return fmt.Errorf("grid not strictly increasing at index %d (%g then %g)", i, g[i-1], g[i])
		}
	}
	return nil
}

// GridSpec is the configuration shape of a grid. Defaults follow the
// reference parameterization: period-2 cash-on-hand on [1e-4, 5] with 500
// points, period-1 on [1e-8, 4] with 100 points.
type GridSpec struct {
	Min    float64
	Max    float64
	Points int
}

func (s GridSpec) Build() (Grid, error) {
	return Linspace(s.Min, s.Max, s.Points)
}

// Reference grid sizing. Callers may override any of it.
var (
	DefaultGridM2 = GridSpec{Min: 1e-4, Max: 5, Points: 500}
	DefaultGridM1 = GridSpec{Min: 1e-8, Max: 4, Points: 100}
)
