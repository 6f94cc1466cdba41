package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield"
)

func (a *App) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <puzzle-file>",
		Short: "Steer the probe interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := asteroidfield.LoadGrid(args[0])
			if err != nil {
				return err
			}
			state, err := asteroidfield.NewState(grid)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, "Commands: UP, DOWN, LEFT, RIGHT, or QUIT")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(a.stdout, asteroidfield.Render(state.Grid()))
				fmt.Fprint(a.stdout, "> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				input := strings.ToUpper(strings.TrimSpace(scanner.Text()))
				switch input {
				case "QUIT", "Q", "EXIT":
					return nil
				}

				next := findMove(state, asteroidfield.Move(input))
				if next == nil {
					fmt.Fprintln(a.stdout, "Invalid move.")
					continue
				}
				state = next
				if state.IsGoal() {
					fmt.Fprint(a.stdout, asteroidfield.Render(state.Grid()))
					fmt.Fprintln(a.stdout, "Docking successful!")
					return nil
				}
			}
		},
	}
}

// findMove returns the successor for the requested move, or nil when the
// move is not currently legal.
func findMove(state *asteroidfield.State, move asteroidfield.Move) *asteroidfield.State {
	for _, succ := range state.MoveGen() {
		if succ.Move == move {
			return succ.State
		}
	}
	return nil
}
