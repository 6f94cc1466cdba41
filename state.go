package asteroidfield

// Position is a (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// State is one immutable configuration of the puzzle: a full grid copy plus
// cached probe and dock positions. Either position may be absent; such a
// state is a degenerate puzzle that is never a goal. States are never
// mutated after construction, every transition yields a fresh State.
type State struct {
	grid     Grid
	n, m     int
	probe    Position
	dock     Position
	hasProbe bool
	hasDock  bool
}

// Successor pairs a legal move with the state it leads to.
type Successor struct {
	Move  Move
	State *State
}

// NewState builds a State from a caller-supplied grid. The grid is deep
// copied so later mutations by the caller cannot alias into the state.
func NewState(grid Grid) (*State, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return newState(grid.Clone()), nil
}

// newState takes ownership of grid without copying or validating.
func newState(grid Grid) *State {
	s := &State{grid: grid, n: len(grid), m: len(grid[0])}
	s.probe, s.hasProbe = s.find(Probe)
	s.dock, s.hasDock = s.find(Dock)
	return s
}

func (s *State) find(target Cell) (Position, bool) {
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.m; j++ {
			if s.grid[i][j] == target {
				return Position{Row: i, Col: j}, true
			}
		}
	}
	return Position{}, false
}

// Grid returns an independent copy of the state's grid.
func (s *State) Grid() Grid { return s.grid.Clone() }

// Dimensions returns the grid size as (rows, cols).
func (s *State) Dimensions() (n, m int) { return s.n, s.m }

// ProbePosition returns the cached probe position, if present.
func (s *State) ProbePosition() (Position, bool) { return s.probe, s.hasProbe }

// DockPosition returns the cached dock position, if present.
func (s *State) DockPosition() (Position, bool) { return s.dock, s.hasDock }

// Key returns the canonical visited-set key for the state. Cached positions
// are excluded: they are derivable from the grid contents.
func (s *State) Key() string { return s.grid.Key() }

// IsGoal reports whether the probe sits on the dock. A state missing either
// the probe or the dock is never a goal.
func (s *State) IsGoal() bool {
	return s.hasProbe && s.hasDock && s.probe == s.dock
}

// InBounds reports whether (row, col) lies inside the grid.
func (s *State) InBounds(row, col int) bool {
	return row >= 0 && row < s.n && col >= 0 && col < s.m
}

// MoveGen generates all legal moves from the state in the fixed order
// UP, DOWN, LEFT, RIGHT. A move onto an empty or dock cell is legal; a move
// into an asteroid is legal only when the contiguous run of asteroids can be
// pushed one cell onto a strictly empty square. A run can never be pushed
// onto the dock or off the grid; that is a rule of the game, not an
// oversight. A state without a probe generates no moves.
func (s *State) MoveGen() []Successor {
	if !s.hasProbe {
		return nil
	}
	var out []Successor
	for _, m := range moveOrder {
		dr, dc := m.Delta()
		row, col := s.probe.Row+dr, s.probe.Col+dc
		if !s.InBounds(row, col) {
			continue
		}
		switch s.grid[row][col] {
		case Wall:
			continue
		case Asteroid:
			if !s.canPush(row, col, dr, dc) {
				continue
			}
		}
		if next := s.Apply(m); next != nil {
			out = append(out, Successor{Move: m, State: next})
		}
	}
	return out
}

// canPush reports whether the contiguous asteroid run starting at (row, col)
// and extending along (dr, dc) terminates on an in-bounds empty cell.
func (s *State) canPush(row, col, dr, dc int) bool {
	for s.InBounds(row, col) && s.grid[row][col] == Asteroid {
		row += dr
		col += dc
	}
	if !s.InBounds(row, col) {
		return false
	}
	return s.grid[row][col] == Empty
}

// Apply produces the state reached by moving the probe one cell in the given
// direction, pushing any asteroid run ahead of it. It assumes the move was
// validated by MoveGen and only re-checks bounds, returning nil for an
// out-of-bounds target. The receiver is left unmodified.
func (s *State) Apply(m Move) *State {
	if !s.hasProbe {
		return nil
	}
	dr, dc := m.Delta()
	row, col := s.probe.Row+dr, s.probe.Col+dc
	if !s.InBounds(row, col) {
		return nil
	}

	grid := s.grid.Clone()
	grid[s.probe.Row][s.probe.Col] = Empty

	if grid[row][col] == Asteroid {
		// Collect the run, then shift it starting from the far end so no
		// cell is read after it has been overwritten.
		var run []Position
		for r, c := row, col; s.InBounds(r, c) && grid[r][c] == Asteroid; r, c = r+dr, c+dc {
			run = append(run, Position{Row: r, Col: c})
		}
		for i := len(run) - 1; i >= 0; i-- {
			p := run[i]
			grid[p.Row][p.Col] = Empty
			grid[p.Row+dr][p.Col+dc] = Asteroid
		}
	}

	grid[row][col] = Probe

	// Moving onto the dock overwrites its grid code, so the dock position is
	// carried over from the source state rather than rescanned. IsGoal works
	// off the cached position, not the grid code.
	return &State{
		grid:     grid,
		n:        s.n,
		m:        s.m,
		probe:    Position{Row: row, Col: col},
		hasProbe: true,
		dock:     s.dock,
		hasDock:  s.hasDock,
	}
}
