package asteroidfield

import "errors"

// Heuristic estimates the remaining cost from a state to the goal. It is a
// pure function of the state; an error signals a state on which the estimate
// is undefined (no probe or no dock).
type Heuristic func(*State) (int, error)

var (
	// ErrNoProbe is returned by heuristics when the state has no probe.
	ErrNoProbe = errors.New("state has no probe")
	// ErrNoDock is returned by heuristics when the state has no dock.
	ErrNoDock = errors.New("state has no dock")
)

// ManhattanDistance returns the Manhattan distance from probe to dock.
func ManhattanDistance(s *State) (int, error) {
	probe, ok := s.ProbePosition()
	if !ok {
		return 0, ErrNoProbe
	}
	dock, ok := s.DockPosition()
	if !ok {
		return 0, ErrNoDock
	}
	return abs(probe.Row-dock.Row) + abs(probe.Col-dock.Col), nil
}

// AsteroidBlocking returns the Manhattan distance plus a penalty of 2 for
// every asteroid lying strictly between probe and dock when they share a row
// or a column. Only asteroid cells on the straight line count; walls on the
// line contribute nothing, and blocking off the cardinal line is ignored.
func AsteroidBlocking(s *State) (int, error) {
	dist, err := ManhattanDistance(s)
	if err != nil {
		return 0, err
	}
	probe, _ := s.ProbePosition()
	dock, _ := s.DockPosition()

	penalty := 0
	if probe.Row == dock.Row {
		for col := min(probe.Col, dock.Col) + 1; col < max(probe.Col, dock.Col); col++ {
			if s.grid[probe.Row][col] == Asteroid {
				penalty += 2
			}
		}
	}
	if probe.Col == dock.Col {
		for row := min(probe.Row, dock.Row) + 1; row < max(probe.Row, dock.Row); row++ {
			if s.grid[row][probe.Col] == Asteroid {
				penalty += 2
			}
		}
	}
	return dist + penalty, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
