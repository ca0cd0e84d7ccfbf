// Package interp provides one-dimensional piecewise-linear interpolation
// over a strictly increasing grid, with linear extrapolation beyond the
// grid's range. Extrapolation is deliberate: period-1 choices can push
// period-2 cash-on-hand outside the solved grid, and queries there must
// return a sensible value rather than an error.
package interp

import (
	"fmt"
	"sort"
)

// Linear interpolates (X, Y) pairs. It owns copies of both slices, so the
// caller's arrays may be reused or mutated afterwards.
type Linear struct {
	xs []float64
	ys []float64
}

func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("length mismatch: %d xs vs %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("xs not strictly increasing at index %d", i)
		}
	}
	l := &Linear{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(l.xs, xs)
	copy(l.ys, ys)
	return l, nil
}

// Eval returns the interpolated value at x. Queries below the first knot
// extend the first segment's line; queries above the last knot extend the
// last segment's line.
func (l *Linear) Eval(x float64) float64 {
	n := len(l.xs)

	// Segment index: the largest i with xs[i] <= x, clamped so that both
	// extrapolation directions reuse an edge segment.
	i := sort.SearchFloat64s(l.xs, x)
	if i < n && l.xs[i] == x {
		// Exact knot: return the stored value, no arithmetic.
		return l.ys[i]
	}
	switch {
	case i <= 0:
		i = 0
	case i >= n:
		i = n - 2
	default:
		i--
	}
	if i > n-2 {
		i = n - 2
	}

	x0, x1 := l.xs[i], l.xs[i+1]
	y0, y1 := l.ys[i], l.ys[i+1]
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// EvalMany maps Eval over a batch of query points, preserving order.
func (l *Linear) EvalMany(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.Eval(x)
	}
	return out
}
