package asteroidfield

// StepSnapshot exposes the per-iteration state of a search.
type StepSnapshot struct {
	// Current is the state popped on this step, nil once the search is done.
	Current *State
	// Path is the move path that reached Current; the solution path when
	// Found is true.
	Path []Move
	// Nodes is the running explored-node count.
	Nodes int
	// FrontierLen and VisitedLen describe the search bookkeeping after the
	// step.
	FrontierLen int
	VisitedLen  int
	// Done and Found flag termination and success.
	Done  bool
	Found bool
}

// Stepper drives a search one frontier pop at a time, so callers can render
// or log each expansion. Each Step call performs exactly one pop and counts
// it, duplicate or not, matching the batch search functions.
type Stepper struct {
	fr      frontier
	h       Heuristic
	visited map[string]bool
	nodes   int
	done    bool
	found   bool
	path    []Move
}

// NewDepthFirstStepper returns a Stepper over a LIFO frontier.
func NewDepthFirstStepper(initial *State) *Stepper {
	return newStepper(initial, &stackFrontier{}, nil)
}

// NewBreadthFirstStepper returns a Stepper over a FIFO frontier.
func NewBreadthFirstStepper(initial *State) *Stepper {
	return newStepper(initial, &queueFrontier{}, nil)
}

// NewBestFirstStepper returns a Stepper over a priority frontier ordered by h.
func NewBestFirstStepper(initial *State, h Heuristic) *Stepper {
	return newStepper(initial, newHeapFrontier(), h)
}

func newStepper(initial *State, fr frontier, h Heuristic) *Stepper {
	fr.push(&entry{state: initial, path: []Move{}, priority: estimate(h, initial)})
	return &Stepper{fr: fr, h: h, visited: make(map[string]bool)}
}

// Step advances the search by one frontier pop and returns a snapshot.
func (st *Stepper) Step() StepSnapshot {
	if st.done {
		return st.snapshot(nil, st.path)
	}
	if st.fr.len() == 0 {
		st.done = true
		return st.snapshot(nil, nil)
	}

	current := st.fr.pop()
	st.nodes++

	if current.state.IsGoal() {
		st.done = true
		st.found = true
		st.path = current.path
		return st.snapshot(current.state, current.path)
	}

	key := current.state.Key()
	if st.visited[key] {
		// Duplicate pop: counted but not expanded.
		return st.snapshot(current.state, current.path)
	}
	st.visited[key] = true

	for _, succ := range current.state.MoveGen() {
		if st.visited[succ.State.Key()] {
			continue
		}
		path := make([]Move, len(current.path)+1)
		copy(path, current.path)
		path[len(current.path)] = succ.Move
		st.fr.push(&entry{state: succ.State, path: path, priority: estimate(st.h, succ.State)})
	}
	return st.snapshot(current.state, current.path)
}

// Result reports the terminal outcome. It is meaningful once a snapshot has
// returned Done.
func (st *Stepper) Result() Result {
	return Result{Path: st.path, Nodes: st.nodes, Found: st.found}
}

func (st *Stepper) snapshot(current *State, path []Move) StepSnapshot {
	return StepSnapshot{
		Current:     current,
		Path:        path,
		Nodes:       st.nodes,
		FrontierLen: st.fr.len(),
		VisitedLen:  len(st.visited),
		Done:        st.done,
		Found:       st.found,
	}
}
