package solver

import (
	"fmt"
	"sync"

	"consav/internal/model"
	"consav/internal/optimize"
)

// solveGrid runs point once per grid index on a worker pool and assembles
// the results by index. Points are independent, so workers write to
// disjoint slots of the solution arrays and no locking is needed; result
// ordering follows the grid, not completion order.
//
// A point that fails (infeasible bounds) fails the whole sweep with its
// grid index attached. A point that merely does not converge is kept as a
// best-effort result and flagged in Solution.Status.
func (e *Engine) solveGrid(grid model.Grid, point func(m float64) (optimize.Result, error)) (*model.Solution, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	sol := model.NewSolution(grid)
	errs := make([]error, len(grid))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(e.opts.Workers)
	for w := 0; w < e.opts.Workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := point(grid[i])
				if err != nil {
					errs[i] = err
					continue
				}
				sol.V[i] = res.F
				sol.C[i] = res.X
				sol.Status[i] = model.PointStatus{
					Index:      i,
					Converged:  res.Converged,
					Iterations: res.Iterations,
				}
			}
		}()
	}
	for i := range grid {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("grid point %d (m=%g): %w", i, grid[i], err)
		}
	}
	return sol, nil
}
