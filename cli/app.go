// Package cli provides the asteroidfield command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root     *cobra.Command
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "asteroidfield",
		Short: "Solve Asteroid Field sliding-block puzzles",
		Long: `asteroidfield solves the Asteroid Field puzzle: steer a probe through a
grid of walls and pushable asteroid lines to its docking bay, using
depth-first, breadth-first, or greedy best-first search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newCompareCmd(),
		app.newBenchCmd(),
		app.newPlayCmd(),
		app.newTraceCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets a custom input reader (used by the play command).
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// logger builds a console logger on stderr at the configured level.
func (a *App) logger() *bolt.Logger {
	return bolt.New(bolt.NewConsoleHandler(a.stderr)).SetLevel(parseLevel(a.logLevel))
}

func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "asteroidfield version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}

// joinMoves renders a move path as "UP -> LEFT -> ...".
func joinMoves(path []asteroidfield.Move) string {
	parts := make([]string, len(path))
	for i, m := range path {
		parts[i] = string(m)
	}
	return strings.Join(parts, " -> ")
}
