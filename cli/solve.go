package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield"
)

func (a *App) newSolveCmd() *cobra.Command {
	var algorithm string
	var nodeLimit int

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle with one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := asteroidfield.LoadGrid(args[0])
			if err != nil {
				return err
			}

			opts := []asteroidfield.Option{asteroidfield.WithContext(cmd.Context())}
			if nodeLimit > 0 {
				opts = append(opts, asteroidfield.WithNodeLimit(nodeLimit))
			}
			solver, err := asteroidfield.NewSolver(algorithm, opts...)
			if err != nil {
				return err
			}
			state, err := asteroidfield.NewState(grid)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Initial state:\n%s\n", asteroidfield.Render(grid))
			result := solver(state)
			printResult(a.stdout, algorithm, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", asteroidfield.AlgorithmBFS,
		fmt.Sprintf("search algorithm %v", asteroidfield.Algorithms()))
	cmd.Flags().IntVar(&nodeLimit, "node-limit", 0,
		"stop after exploring this many nodes (0 = unlimited)")
	return cmd
}

func printResult(w io.Writer, algorithm string, result asteroidfield.Result) {
	fmt.Fprintf(w, "--- %s ---\n", algorithm)
	if !result.Found {
		fmt.Fprintf(w, "No solution found (nodes explored: %d)\n", result.Nodes)
		return
	}
	fmt.Fprintf(w, "Solution found in %d moves!\n", len(result.Path))
	fmt.Fprintf(w, "Nodes explored: %d\n", result.Nodes)
	if len(result.Path) > 0 {
		fmt.Fprintf(w, "Solution path: %s\n", joinMoves(result.Path))
	}
}
