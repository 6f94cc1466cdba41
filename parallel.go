package asteroidfield

import (
	"context"
	"time"
)

// NamedSolver pairs a solver with a display name.
type NamedSolver struct {
	Name  string
	Solve Solver
}

// Outcome is the result of one solver run within RunAll.
type Outcome struct {
	Name    string
	Result  Result
	Elapsed time.Duration
}

// RunAll executes every solver concurrently, one goroutine per solver, each
// over its own independent State built from grid. States and frontiers are
// never shared across runs, so no coordination beyond result collection is
// needed. Outcomes are returned in solver order.
//
// Cancelling ctx abandons collection and returns the outcomes gathered so
// far together with the context error; in-flight solvers keep running until
// they finish on their own (bound them with WithNodeLimit or WithContext
// when constructing the solvers).
func RunAll(ctx context.Context, grid Grid, solvers []NamedSolver) ([]Outcome, error) {
	if _, err := NewState(grid); err != nil {
		return nil, err
	}

	outcomes := make(chan Outcome, len(solvers))
	for _, ns := range solvers {
		go func() {
			state, _ := NewState(grid)
			start := time.Now()
			result := ns.Solve(state)
			outcomes <- Outcome{Name: ns.Name, Result: result, Elapsed: time.Since(start)}
		}()
	}

	byName := make(map[string]Outcome, len(solvers))
	for range solvers {
		select {
		case <-ctx.Done():
			return collect(solvers, byName), ctx.Err()
		case out := <-outcomes:
			byName[out.Name] = out
		}
	}
	return collect(solvers, byName), nil
}

func collect(solvers []NamedSolver, byName map[string]Outcome) []Outcome {
	out := make([]Outcome, 0, len(byName))
	for _, ns := range solvers {
		if o, ok := byName[ns.Name]; ok {
			out = append(out, o)
		}
	}
	return out
}
