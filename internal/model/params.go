package model

import (
	"errors"
	"math"
)

// Params defines the preferences and environment of the two-period
// consumption-saving problem. Conventions:
// - Rho: coefficient of relative risk aversion (CRRA); must differ from 1.
// - Nu: bequest motive strength, >= 0. Nu == 0 disables the bequest motive.
// - Kappa: luxuriousness offset in the bequest motive, > 0. Keeps the
//   bequest argument positive when everything is consumed.
// - Beta: discount factor between periods, in (0, 1].
// - R: net return on savings carried into period 2, > -1.
// - Delta: income-risk half-spread, in [0, 1]. Period-2 income is
//   1-Delta or 1+Delta.
// - PLow, PHigh: probabilities of the low/high income state; each in [0, 1]
//   and summing to 1.
type Params struct {
	Rho   float64
	Nu    float64
	Kappa float64
	Beta  float64
	R     float64
	Delta float64
	PLow  float64
	PHigh float64
}

// probTol absorbs float noise when checking PLow+PHigh == 1.
const probTol = 1e-9

func (p Params) Validate() error {
	if p.Rho == 1 {
		return errors.New("Rho must differ from 1 (CRRA utility is undefined at the log case)")
	}
	if p.Nu < 0 {
		return errors.New("Nu must be >= 0")
	}
	if p.Kappa <= 0 {
		return errors.New("Kappa must be > 0")
	}
	if p.Beta <= 0 || p.Beta > 1 {
		return errors.New("Beta must be in (0, 1]")
	}
	if p.R <= -1 {
		return errors.New("R must be > -1")
	}
	if p.Delta < 0 || p.Delta > 1 {
		return errors.New("Delta must be in [0, 1]")
	}
	if p.PLow < 0 || p.PLow > 1 || p.PHigh < 0 || p.PHigh > 1 {
		return errors.New("PLow/PHigh must each be in [0, 1]")
	}
	if math.Abs(p.PLow+p.PHigh-1) > probTol {
		return errors.New("PLow + PHigh must sum to 1")
	}
	return nil
}

// Utility is CRRA utility of consumption: c^(1-Rho)/(1-Rho).
// Only defined for c > 0; outside that domain it returns a non-finite
// value, which the optimizer's bounds are expected to keep out of reach.
func (p Params) Utility(c float64) float64 {
	return math.Pow(c, 1-p.Rho) / (1 - p.Rho)
}

// Bequest is the warm-glow value of wealth left unconsumed in period 2:
// Nu * (m - c + Kappa)^(1-Rho) / (1-Rho). The argument m-c+Kappa must stay
// positive; the period-2 solver enforces this via its upper bound c <= m.
func (p Params) Bequest(m, c float64) float64 {
	return p.Nu * math.Pow(m-c+p.Kappa, 1-p.Rho) / (1 - p.Rho)
}
