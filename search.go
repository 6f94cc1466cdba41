package asteroidfield

import (
	"context"
	"fmt"
	"math"
)

// Result contains the outcome of a search.
//
// Path is nil when no solution was found and a non-nil empty slice when the
// initial state was already the goal; Found disambiguates explicitly. Nodes
// counts frontier pops, including the pop that discovered the goal and pops
// of already-visited duplicates.
type Result struct {
	Path  []Move
	Nodes int
	Found bool
}

// Options defines parameters for a search run.
type Options struct {
	// NodeLimit bounds the number of frontier pops; zero means unlimited.
	NodeLimit int
	// Context allows cooperative cancellation, checked once per pop.
	Context context.Context
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithNodeLimit bounds the search to at most n frontier pops. When the limit
// is reached the search returns not-found with the count so far.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithContext makes the search stop early, returning not-found, once ctx is
// cancelled.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Context = ctx }
}

// DepthFirstSearch explores the puzzle with a LIFO frontier. The returned
// path is a valid solution but carries no length guarantee.
func DepthFirstSearch(initial *State, options ...Option) Result {
	return runSearch(initial, &stackFrontier{}, nil, options...)
}

// BreadthFirstSearch explores the puzzle with a FIFO frontier. When a
// solution exists, the returned path uses the fewest moves.
func BreadthFirstSearch(initial *State, options ...Option) Result {
	return runSearch(initial, &queueFrontier{}, nil, options...)
}

// BestFirstSearch explores the puzzle greedily, popping the frontier entry
// with the lowest heuristic value first. The heuristic is evaluated once per
// state at insertion time. Pure greedy: path length is ignored, so the
// result is not guaranteed shortest even under an admissible heuristic.
func BestFirstSearch(initial *State, h Heuristic, options ...Option) Result {
	return runSearch(initial, newHeapFrontier(), h, options...)
}

// runSearch is the orchestrator shared by all three strategies: pop, count,
// goal test, visited check, expand. The goal test runs before the visited
// check, so a duplicate pop that happens to be the goal still wins.
func runSearch(initial *State, fr frontier, h Heuristic, options ...Option) Result {
	var opts Options
	for _, option := range options {
		option(&opts)
	}

	fr.push(&entry{state: initial, path: []Move{}, priority: estimate(h, initial)})
	visited := make(map[string]bool)
	nodes := 0

	for fr.len() > 0 {
		if opts.Context != nil && opts.Context.Err() != nil {
			break
		}
		current := fr.pop()
		nodes++

		if current.state.IsGoal() {
			return Result{Path: current.path, Nodes: nodes, Found: true}
		}
		if opts.NodeLimit > 0 && nodes >= opts.NodeLimit {
			break
		}

		key := current.state.Key()
		if visited[key] {
			continue
		}
		visited[key] = true

		for _, succ := range current.state.MoveGen() {
			if visited[succ.State.Key()] {
				continue
			}
			path := make([]Move, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = succ.Move
			fr.push(&entry{state: succ.State, path: path, priority: estimate(h, succ.State)})
		}
	}
	return Result{Nodes: nodes}
}

// estimate evaluates the heuristic for frontier ordering. A state on which
// the heuristic is undefined (no probe or dock) sorts last: the search still
// terminates with its normal contract instead of failing.
func estimate(h Heuristic, s *State) int {
	if h == nil {
		return 0
	}
	v, err := h(s)
	if err != nil {
		return math.MaxInt
	}
	return v
}

// Solver runs one search strategy to completion over an initial state.
type Solver func(*State) Result

// Algorithm names accepted by NewSolver.
const (
	AlgorithmDFS                = "dfs"
	AlgorithmBFS                = "bfs"
	AlgorithmBestFirstManhattan = "best-first-manhattan"
	AlgorithmBestFirstAsteroid  = "best-first-asteroid"
)

// Algorithms returns the known algorithm names in a fixed order.
func Algorithms() []string {
	return []string{AlgorithmDFS, AlgorithmBFS, AlgorithmBestFirstManhattan, AlgorithmBestFirstAsteroid}
}

// NewSolver returns the solver for a named algorithm.
func NewSolver(algorithm string, options ...Option) (Solver, error) {
	switch algorithm {
	case AlgorithmDFS:
		return func(s *State) Result { return DepthFirstSearch(s, options...) }, nil
	case AlgorithmBFS:
		return func(s *State) Result { return BreadthFirstSearch(s, options...) }, nil
	case AlgorithmBestFirstManhattan:
		return func(s *State) Result { return BestFirstSearch(s, ManhattanDistance, options...) }, nil
	case AlgorithmBestFirstAsteroid:
		return func(s *State) Result { return BestFirstSearch(s, AsteroidBlocking, options...) }, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
