package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/asteroidfield/bench"
)

func (a *App) newBenchCmd() *cobra.Command {
	var csvPath, reportPath string

	cmd := &cobra.Command{
		Use:   "bench <suite.yaml>",
		Short: "Run a benchmark suite and write statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := bench.LoadSuite(args[0])
			if err != nil {
				return err
			}
			if csvPath != "" {
				suite.Output.CSV = csvPath
			}
			if reportPath != "" {
				suite.Output.Report = reportPath
			}

			runner := bench.NewRunner(a.logger())
			rows, err := runner.Run(cmd.Context(), suite)
			if err != nil {
				return err
			}

			if suite.Output.CSV != "" {
				if err := writeFile(suite.Output.CSV, func(f *os.File) error {
					return bench.WriteCSV(f, rows)
				}); err != nil {
					return err
				}
			}
			if suite.Output.Report != "" {
				if err := writeFile(suite.Output.Report, func(f *os.File) error {
					return bench.WriteReport(f, rows)
				}); err != nil {
					return err
				}
			}

			printSummary(a, bench.Summarize(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "override the suite's CSV output path")
	cmd.Flags().StringVar(&reportPath, "report", "", "override the suite's report output path")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func printSummary(a *App, summary map[string]bench.AlgorithmSummary) {
	algorithms := make([]string, 0, len(summary))
	for algo := range summary {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)

	fmt.Fprintf(a.stdout, "%-22s %5s %7s %12s %10s %10s\n",
		"algorithm", "runs", "solved", "avg time ms", "avg nodes", "avg moves")
	for _, algo := range algorithms {
		s := summary[algo]
		fmt.Fprintf(a.stdout, "%-22s %5d %7d %12.3f %10.1f %10.1f\n",
			algo, s.Runs, s.Solved, s.AvgTime, s.AvgNodes, s.AvgMoves)
	}
}
