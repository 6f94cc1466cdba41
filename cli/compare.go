package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield"
)

func (a *App) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <puzzle-file>",
		Short: "Run every algorithm concurrently and compare results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := asteroidfield.LoadGrid(args[0])
			if err != nil {
				return err
			}

			var solvers []asteroidfield.NamedSolver
			for _, name := range asteroidfield.Algorithms() {
				solver, err := asteroidfield.NewSolver(name, asteroidfield.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				solvers = append(solvers, asteroidfield.NamedSolver{Name: name, Solve: solver})
			}

			fmt.Fprintf(a.stdout, "Initial state:\n%s\n", asteroidfield.Render(grid))
			outcomes, err := asteroidfield.RunAll(cmd.Context(), grid, solvers)
			if err != nil {
				return err
			}
			for _, out := range outcomes {
				moves := "-"
				if out.Result.Found {
					moves = fmt.Sprintf("%d", len(out.Result.Path))
				}
				fmt.Fprintf(a.stdout, "%-22s moves=%-4s nodes=%-7d time=%s\n",
					out.Name, moves, out.Result.Nodes, out.Elapsed)
			}
			return nil
		},
	}
}
