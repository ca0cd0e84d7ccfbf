package analysis

import (
	"math"
	"sort"

	"consav/internal/model"
)

// ConsumptionSummary describes the distribution of simulated period-1
// consumption across a set of initial-wealth draws.
type ConsumptionSummary struct {
	Count int

	MinC  float64
	MaxC  float64
	MeanC float64
	P05C  float64
	P95C  float64

	// MeanSavingsRate averages (m - c)/m over draws with positive wealth.
	MeanSavingsRate float64
}

// ComputeSummary summarizes simulated consumption against the draws that
// produced it. draws and consumption are parallel, one entry per household.
func ComputeSummary(draws, consumption []float64) ConsumptionSummary {
	s := ConsumptionSummary{}
	if len(consumption) == 0 || len(draws) != len(consumption) {
		return s
	}
	s.Count = len(consumption)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(consumption))

	rateSum := 0.0
	rateN := 0

	for i, c := range consumption {
		vals = append(vals, c)
		sum += c
		if c < minv {
			minv = c
		}
		if c > maxv {
			maxv = c
		}
		if m := draws[i]; m > 0 {
			rateSum += (m - c) / m
			rateN++
		}
	}
	sort.Float64s(vals)

	s.MinC = minv
	s.MaxC = maxv
	s.MeanC = sum / float64(len(vals))
	s.P05C = percentileSorted(vals, 0.05)
	s.P95C = percentileSorted(vals, 0.95)
	if rateN > 0 {
		s.MeanSavingsRate = rateSum / float64(rateN)
	}
	return s
}

// PolicySummary describes a solved consumption policy over its grid.
type PolicySummary struct {
	GridPoints   int
	MinC         float64
	MaxC         float64
	MeanMPC      float64 // average marginal propensity to consume (forward-difference slope)
	NonConverged int
}

func ComputePolicy(sol *model.Solution) PolicySummary {
	s := PolicySummary{}
	if sol == nil || sol.Len() == 0 {
		return s
	}
	s.GridPoints = sol.Len()
	s.NonConverged = len(sol.NonConverged())

	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, c := range sol.C {
		if c < minv {
			minv = c
		}
		if c > maxv {
			maxv = c
		}
	}
	s.MinC = minv
	s.MaxC = maxv

	if sol.Len() >= 2 {
		slopeSum := 0.0
		n := 0
		for i := 1; i < sol.Len(); i++ {
			dm := sol.M[i] - sol.M[i-1]
			if dm <= 0 {
				continue
			}
			slopeSum += (sol.C[i] - sol.C[i-1]) / dm
			n++
		}
		if n > 0 {
			s.MeanMPC = slopeSum / float64(n)
		}
	}
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
