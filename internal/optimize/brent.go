// Package optimize provides a bound-constrained scalar optimizer for the
// per-grid-point consumption problems. It is Brent's method on a bracketing
// interval: golden-section steps with parabolic interpolation where the fit
// is trustworthy, no derivatives required.
package optimize

import (
	"fmt"
	"math"
)

// Options tunes a single scalar solve. Zero values fall back to defaults.
type Options struct {
	// XTol is the absolute tolerance on the argmin location.
	XTol float64
	// MaxIter caps the number of function-shrink iterations.
	MaxIter int
	// X0 is an optional initial point. When it lies strictly inside the
	// bounds the search starts there; otherwise the golden point is used.
	X0 float64
}

const (
	defaultXTol    = 1e-10
	defaultMaxIter = 500

	// cgold is the squared inverse golden ratio; the fraction of the
	// interval a golden-section step retains.
	cgold = 0.3819660112501051
)

// Result is the outcome of one scalar solve. When Converged is false the
// fields still hold the best point found; callers decide what to do with a
// best-effort answer.
type Result struct {
	X          float64
	F          float64
	Iterations int
	Converged  bool
}

// Minimize finds the minimum of f on [lo, hi]. It returns an error only for
// an infeasible bracket (hi <= lo); numerical non-convergence is reported
// through Result.Converged instead.
func Minimize(f func(float64) float64, lo, hi float64, opt Options) (Result, error) {
	if hi <= lo {
		return Result{}, fmt.Errorf("infeasible bounds: [%g, %g]", lo, hi)
	}
	xtol := opt.XTol
	if xtol <= 0 {
		xtol = defaultXTol
	}
	maxIter := opt.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}

	a, b := lo, hi
	x := a + cgold*(b-a)
	if opt.X0 > a && opt.X0 < b {
		x = opt.X0
	}
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx

	sqrtEps := math.Sqrt(math.Nextafter(1, 2) - 1)
	var d, e float64

	for iter := 1; iter <= maxIter; iter++ {
		xm := 0.5 * (a + b)
		tol1 := sqrtEps*math.Abs(x) + xtol/3
		tol2 := 2 * tol1

		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return Result{X: x, F: fx, Iterations: iter, Converged: true}, nil
		}

		golden := true
		if math.Abs(e) > tol1 {
			// Try a parabolic fit through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etmp := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*etmp) && p > q*(a-x) && p < q*(b-x) {
				// Parabolic step accepted.
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
				golden = false
			}
		}
		if golden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return Result{X: x, F: fx, Iterations: maxIter, Converged: false}, nil
}

// Maximize runs Minimize on the negated objective and flips the sign of the
// optimum back.
func Maximize(f func(float64) float64, lo, hi float64, opt Options) (Result, error) {
	res, err := Minimize(func(x float64) float64 { return -f(x) }, lo, hi, opt)
	if err != nil {
		return Result{}, err
	}
	res.F = -res.F
	return res, nil
}
