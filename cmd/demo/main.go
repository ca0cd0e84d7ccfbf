package main

import (
	"flag"
	"fmt"

	"consav/internal/analysis"
	"consav/internal/config"
	"consav/internal/model"
	"consav/internal/sim"
	"consav/internal/solver"
)

// Demo:
// - Build a parameter bundle (defaults, or from --config YAML)
// - Solve both periods and print a slice of the policy grids
// - Simulate consumption for a small wealth sample
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.Params{
		Rho:   2.0,
		Nu:    0.1,
		Kappa: 0.5,
		Beta:  0.95,
		R:     0.02,
		Delta: 0.5,
		PLow:  0.5,
		PHigh: 0.5,
	}
	opts := solver.Options{}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Model.ToParams()
		opts = cfg.ToSolverOptions()
	}

	engine, err := solver.New(params, opts)
	if err != nil {
		panic(err)
	}
	result, err := engine.Solve()
	if err != nil {
		panic(err)
	}

	fmt.Println("period-1 policy (every 10th grid point):")
	fmt.Printf("%10s %12s %12s\n", "m1", "v1", "c1")
	for i := 0; i < result.Period1.Len(); i += 10 {
		fmt.Printf("%10.4f %12.4f %12.4f\n",
			result.Period1.M[i], result.Period1.V[i], result.Period1.C[i])
	}

	p1 := analysis.ComputePolicy(result.Period1)
	p2 := analysis.ComputePolicy(result.Period2)
	fmt.Printf("\nperiod 1: %d points, mean MPC %.4f, %d non-converged\n",
		p1.GridPoints, p1.MeanMPC, p1.NonConverged)
	fmt.Printf("period 2: %d points, mean MPC %.4f, %d non-converged\n",
		p2.GridPoints, p2.MeanMPC, p2.NonConverged)

	draws := []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}
	simulator, err := sim.New(result.Period1)
	if err != nil {
		panic(err)
	}
	consumption := simulator.Consumption(draws)

	fmt.Println("\nsimulated consumption:")
	for i, m := range draws {
		fmt.Printf("  m1=%.2f -> c1=%.4f\n", m, consumption[i])
	}
	summary := analysis.ComputeSummary(draws, consumption)
	fmt.Printf("\nmean c %.4f, mean savings rate %.4f\n", summary.MeanC, summary.MeanSavingsRate)
}
