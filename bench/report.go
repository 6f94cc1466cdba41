package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteCSV writes one record per row with a header line. Unsolved runs get
// an empty moves column.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "puzzle", "algorithm", "moves", "nodes", "time_ms"}); err != nil {
		return err
	}
	for _, r := range rows {
		moves := ""
		if r.Solved {
			moves = strconv.Itoa(r.Moves)
		}
		record := []string{
			r.RunID,
			r.Puzzle,
			r.Algorithm,
			moves,
			strconv.Itoa(r.Nodes),
			fmt.Sprintf("%.3f", float64(r.Duration.Microseconds())/1000.0),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport writes a human-readable comparison: per puzzle, algorithms
// ranked by time and then by explored nodes.
func WriteReport(w io.Writer, rows []Row) error {
	byPuzzle := make(map[string][]Row)
	var order []string
	for _, r := range rows {
		if _, seen := byPuzzle[r.Puzzle]; !seen {
			order = append(order, r.Puzzle)
		}
		byPuzzle[r.Puzzle] = append(byPuzzle[r.Puzzle], r)
	}

	if _, err := fmt.Fprintf(w, "Algorithm Comparison Report\n===========================\n\n"); err != nil {
		return err
	}
	for _, puzzle := range order {
		ranked := append([]Row(nil), byPuzzle[puzzle]...)
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Duration == ranked[j].Duration {
				return ranked[i].Nodes < ranked[j].Nodes
			}
			return ranked[i].Duration < ranked[j].Duration
		})
		if _, err := fmt.Fprintf(w, "Puzzle: %s\n", puzzle); err != nil {
			return err
		}
		for _, r := range ranked {
			moves := "-"
			if r.Solved {
				moves = strconv.Itoa(r.Moves)
			}
			if _, err := fmt.Fprintf(w, "  %-22s moves=%-4s nodes=%-7d time=%s\n",
				r.Algorithm, moves, r.Nodes, r.Duration); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// AlgorithmSummary aggregates runs of one algorithm across a suite.
type AlgorithmSummary struct {
	Runs     int
	Solved   int
	AvgTime  float64 // milliseconds
	MinTime  float64
	MaxTime  float64
	AvgNodes float64
	MinNodes int
	MaxNodes int
	AvgMoves float64 // solved runs only
}

// Summarize computes per-algorithm aggregates over the rows.
func Summarize(rows []Row) map[string]AlgorithmSummary {
	byAlgo := make(map[string][]Row)
	for _, r := range rows {
		byAlgo[r.Algorithm] = append(byAlgo[r.Algorithm], r)
	}

	out := make(map[string]AlgorithmSummary, len(byAlgo))
	for algo, list := range byAlgo {
		s := AlgorithmSummary{Runs: len(list)}
		var timeSum, movesSum float64
		var nodesSum int
		for i, r := range list {
			ms := float64(r.Duration.Microseconds()) / 1000.0
			timeSum += ms
			nodesSum += r.Nodes
			if i == 0 || ms < s.MinTime {
				s.MinTime = ms
			}
			if ms > s.MaxTime {
				s.MaxTime = ms
			}
			if i == 0 || r.Nodes < s.MinNodes {
				s.MinNodes = r.Nodes
			}
			if r.Nodes > s.MaxNodes {
				s.MaxNodes = r.Nodes
			}
			if r.Solved {
				s.Solved++
				movesSum += float64(r.Moves)
			}
		}
		s.AvgTime = timeSum / float64(s.Runs)
		s.AvgNodes = float64(nodesSum) / float64(s.Runs)
		if s.Solved > 0 {
			s.AvgMoves = movesSum / float64(s.Solved)
		}
		out[algo] = s
	}
	return out
}
