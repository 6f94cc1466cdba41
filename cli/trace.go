package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield"
)

func (a *App) newTraceCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "trace <puzzle-file>",
		Short: "Run a search step by step, logging every expansion",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := asteroidfield.LoadGrid(args[0])
			if err != nil {
				return err
			}
			state, err := asteroidfield.NewState(grid)
			if err != nil {
				return err
			}
			stepper, err := newStepper(state, algorithm)
			if err != nil {
				return err
			}

			logger := a.logger()
			for {
				snap := stepper.Step()
				if snap.Done {
					break
				}
				logger.Debug().
					Int("nodes", snap.Nodes).
					Int("frontier", snap.FrontierLen).
					Int("visited", snap.VisitedLen).
					Int("depth", len(snap.Path)).
					Msg("expanded node")
				if err := cmd.Context().Err(); err != nil {
					return err
				}
			}
			printResult(a.stdout, algorithm, stepper.Result())
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", asteroidfield.AlgorithmBFS,
		fmt.Sprintf("search algorithm %v", asteroidfield.Algorithms()))
	return cmd
}

func newStepper(state *asteroidfield.State, algorithm string) (*asteroidfield.Stepper, error) {
	switch algorithm {
	case asteroidfield.AlgorithmDFS:
		return asteroidfield.NewDepthFirstStepper(state), nil
	case asteroidfield.AlgorithmBFS:
		return asteroidfield.NewBreadthFirstStepper(state), nil
	case asteroidfield.AlgorithmBestFirstManhattan:
		return asteroidfield.NewBestFirstStepper(state, asteroidfield.ManhattanDistance), nil
	case asteroidfield.AlgorithmBestFirstAsteroid:
		return asteroidfield.NewBestFirstStepper(state, asteroidfield.AsteroidBlocking), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
