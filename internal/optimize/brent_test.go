package optimize

import (
	"math"
	"testing"
)

func TestMinimizeQuadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }
	res, err := Minimize(f, 0, 5, Options{})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if !res.Converged {
		t.Errorf("expected convergence, took %d iterations", res.Iterations)
	}
	if math.Abs(res.X-2) > 1e-6 {
		t.Errorf("argmin = %g, want 2", res.X)
	}
	if math.Abs(res.F) > 1e-10 {
		t.Errorf("minimum = %g, want 0", res.F)
	}
}

func TestMinimizeNonSmooth(t *testing.T) {
	// |x - 0.3| has no usable parabolic fit near the kink; golden-section
	// steps must still close in.
	f := func(x float64) float64 { return math.Abs(x - 0.3) }
	res, err := Minimize(f, -1, 1, Options{})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if math.Abs(res.X-0.3) > 1e-6 {
		t.Errorf("argmin = %g, want 0.3", res.X)
	}
}

func TestMinimizeBoundaryOptimum(t *testing.T) {
	// Monotone increasing objective: the minimum sits on the lower bound.
	f := func(x float64) float64 { return x }
	res, err := Minimize(f, 1, 2, Options{})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if math.Abs(res.X-1) > 1e-6 {
		t.Errorf("argmin = %g, want lower bound 1", res.X)
	}
}

func TestMaximize(t *testing.T) {
	f := func(x float64) float64 { return 3 - (x-1)*(x-1) }
	res, err := Maximize(f, -5, 5, Options{X0: 0.5})
	if err != nil {
		t.Fatalf("Maximize: %v", err)
	}
	if math.Abs(res.X-1) > 1e-6 {
		t.Errorf("argmax = %g, want 1", res.X)
	}
	if math.Abs(res.F-3) > 1e-10 {
		t.Errorf("maximum = %g, want 3", res.F)
	}
}

func TestMinimizeInfeasibleBounds(t *testing.T) {
	f := func(x float64) float64 { return x }
	if _, err := Minimize(f, 2, 2, Options{}); err == nil {
		t.Errorf("expected error for empty interval")
	}
	if _, err := Minimize(f, 3, 1, Options{}); err == nil {
		t.Errorf("expected error for inverted interval")
	}
}

func TestMinimizeIterationBudget(t *testing.T) {
	f := func(x float64) float64 { return (x - 123456) * (x - 123456) }
	res, err := Minimize(f, 0, 1e6, Options{MaxIter: 2})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if res.Converged {
		t.Errorf("expected non-convergence with a 2-iteration budget")
	}
	// Best-effort result is still returned.
	if res.X < 0 || res.X > 1e6 {
		t.Errorf("best-effort X = %g outside bounds", res.X)
	}
}

func TestMinimizeInitialGuess(t *testing.T) {
	// The initial point must not anchor the search away from the optimum.
	f := func(x float64) float64 { return (x - 4) * (x - 4) }
	res, err := Minimize(f, 0, 10, Options{X0: 1})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if math.Abs(res.X-4) > 1e-6 {
		t.Errorf("argmin = %g, want 4", res.X)
	}
}
