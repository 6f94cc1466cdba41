package bench

import (
	"context"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"

	"github.com/pdrpinto/asteroidfield"
)

// Row is one (puzzle, algorithm) measurement.
type Row struct {
	RunID     string
	Puzzle    string
	Algorithm string
	Solved    bool
	Moves     int // meaningful only when Solved
	Nodes     int
	Duration  time.Duration
}

// Runner executes benchmark suites.
type Runner struct {
	logger *bolt.Logger
}

// NewRunner returns a Runner logging through the given logger (nil disables
// logging).
func NewRunner(logger *bolt.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run loads every puzzle in the suite and measures every configured
// algorithm against it. It fails fast on unreadable or malformed puzzles.
func (r *Runner) Run(ctx context.Context, suite *Suite) ([]Row, error) {
	var rows []Row
	for _, p := range suite.Puzzles {
		grid, err := asteroidfield.LoadGrid(p.Path)
		if err != nil {
			return nil, err
		}
		puzzleRows, err := r.RunGrid(ctx, p.Name, grid, suite.Algorithms)
		if err != nil {
			return nil, err
		}
		rows = append(rows, puzzleRows...)
	}
	return rows, nil
}

// RunGrid measures the named algorithms against a single grid.
func (r *Runner) RunGrid(ctx context.Context, puzzle string, grid asteroidfield.Grid, algorithms []string) ([]Row, error) {
	rows := make([]Row, 0, len(algorithms))
	for _, name := range algorithms {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		solver, err := asteroidfield.NewSolver(name)
		if err != nil {
			return nil, err
		}
		state, err := asteroidfield.NewState(grid)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		result := solver(state)
		elapsed := time.Since(start)

		row := Row{
			RunID:     uuid.NewString(),
			Puzzle:    puzzle,
			Algorithm: name,
			Solved:    result.Found,
			Moves:     len(result.Path),
			Nodes:     result.Nodes,
			Duration:  elapsed,
		}
		rows = append(rows, row)

		if r.logger != nil {
			r.logger.Info().
				Str("run_id", row.RunID).
				Str("puzzle", puzzle).
				Str("algorithm", name).
				Bool("solved", row.Solved).
				Int("moves", row.Moves).
				Int("nodes", row.Nodes).
				Int("time_ms", int(elapsed.Milliseconds())).
				Msg("benchmark run complete")
		}
	}
	return rows, nil
}
