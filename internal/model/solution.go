package model

// PointStatus records how the scalar optimization went at a single grid
// point. The solve never aborts on a non-converged point; it stores the
// best-effort result and flags it here so downstream consumers can tell.
type PointStatus struct {
	Index      int
	Converged  bool
	Iterations int
}

// Solution holds the solved policy for one period as parallel arrays,
// indices aligned 1:1:
// - M: the cash-on-hand grid
// - V: value at each grid point
// - C: optimal consumption at each grid point
// - Status: per-point optimizer diagnostics
type Solution struct {
	M      Grid
	V      []float64
	C      []float64
	Status []PointStatus
}

func NewSolution(m Grid) *Solution {
	n := len(m)
	return &Solution{
		M:      m,
		V:      make([]float64, n),
		C:      make([]float64, n),
		Status: make([]PointStatus, n),
	}
}

func (s *Solution) Len() int { return len(s.M) }

// NonConverged returns the indices of grid points whose optimization did
// not meet tolerance within the iteration budget.
func (s *Solution) NonConverged() []int {
	var idx []int
	for _, st := range s.Status {
		if !st.Converged {
			idx = append(idx, st.Index)
		}
	}
	return idx
}
