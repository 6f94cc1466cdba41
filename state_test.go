package asteroidfield

import (
	"errors"
	"testing"
)

// scenarioA is a 4x4 field: probe at (2,0), dock at (0,3), one asteroid at
// (1,1). Solvable in 5 moves.
func scenarioA() Grid {
	return Grid{
		{0, 0, 0, 4},
		{0, 2, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 0},
	}
}

// scenarioB is a 2x2 dead end: probe walled in, dock unreachable.
func scenarioB() Grid {
	return Grid{
		{3, 1},
		{1, 4},
	}
}

func mustState(t *testing.T, grid Grid) *State {
	t.Helper()
	s, err := NewState(grid)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

func TestNewState_Validation(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		want error
	}{
		{"empty", Grid{}, errEmptyGrid},
		{"empty row", Grid{{}}, errEmptyGrid},
		{"ragged", Grid{{0, 0}, {0}}, errRaggedGrid},
		{"unknown code", Grid{{0, 7}}, errUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewState(tc.grid); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewState_CopiesCallerGrid(t *testing.T) {
	grid := scenarioA()
	s := mustState(t, grid)

	grid[2][0] = Wall
	if s.Key() != mustState(t, scenarioA()).Key() {
		t.Error("mutating the caller's grid leaked into the state")
	}
}

func TestNewState_Positions(t *testing.T) {
	s := mustState(t, scenarioA())

	probe, ok := s.ProbePosition()
	if !ok || probe != (Position{Row: 2, Col: 0}) {
		t.Errorf("Expected probe at (2,0), got %v (present=%v)", probe, ok)
	}
	dock, ok := s.DockPosition()
	if !ok || dock != (Position{Row: 0, Col: 3}) {
		t.Errorf("Expected dock at (0,3), got %v (present=%v)", dock, ok)
	}

	bare := mustState(t, Grid{{0, 0}})
	if _, ok := bare.ProbePosition(); ok {
		t.Error("Expected no probe in an empty grid")
	}
	if _, ok := bare.DockPosition(); ok {
		t.Error("Expected no dock in an empty grid")
	}
	if bare.IsGoal() {
		t.Error("A state without probe and dock must never be a goal")
	}
}

func TestState_Key(t *testing.T) {
	a := mustState(t, scenarioA())
	b := mustState(t, scenarioA())
	if a == b {
		t.Fatal("Expected distinct state objects")
	}
	if a.Key() != b.Key() {
		t.Errorf("Equal grids must produce equal keys: %q vs %q", a.Key(), b.Key())
	}

	c := mustState(t, Grid{
		{0, 0, 0, 4},
		{0, 2, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
	})
	if a.Key() == c.Key() {
		t.Error("Different grids must produce different keys")
	}
}

func TestState_IsGoal(t *testing.T) {
	if mustState(t, scenarioA()).IsGoal() {
		t.Error("Probe away from dock must not be a goal")
	}

	// Reaching the dock through Apply keeps the cached dock position even
	// though the grid code is overwritten.
	atDock := mustState(t, Grid{{3, 4}}).Apply(Right)
	if atDock == nil || !atDock.IsGoal() {
		t.Error("Probe moved onto dock must be a goal")
	}
}

func TestState_InBounds(t *testing.T) {
	s := mustState(t, scenarioA())
	for _, tc := range []struct {
		row, col int
		want     bool
	}{
		{0, 0, true}, {3, 3, true}, {-1, 0, false}, {0, -1, false}, {4, 0, false}, {0, 4, false},
	} {
		if got := s.InBounds(tc.row, tc.col); got != tc.want {
			t.Errorf("InBounds(%d,%d): expected %v, got %v", tc.row, tc.col, tc.want, got)
		}
	}
}

func TestMoveGen_OrderAndUnitVectors(t *testing.T) {
	s := mustState(t, scenarioA())
	succs := s.MoveGen()
	if len(succs) != 3 {
		t.Fatalf("Expected 3 moves (UP, DOWN, RIGHT), got %d", len(succs))
	}
	wantOrder := []Move{Up, Down, Right}
	probe, _ := s.ProbePosition()
	for i, succ := range succs {
		if succ.Move != wantOrder[i] {
			t.Errorf("Move %d: expected %s, got %s", i, wantOrder[i], succ.Move)
		}
		next, _ := succ.State.ProbePosition()
		dr, dc := succ.Move.Delta()
		if next.Row != probe.Row+dr || next.Col != probe.Col+dc {
			t.Errorf("%s: probe moved from %v to %v, not by unit vector (%d,%d)",
				succ.Move, probe, next, dr, dc)
		}
	}
}

func TestMoveGen_DeadEnd(t *testing.T) {
	if succs := mustState(t, scenarioB()).MoveGen(); len(succs) != 0 {
		t.Errorf("Expected no legal moves, got %d", len(succs))
	}
}

func TestMoveGen_Idempotent(t *testing.T) {
	s := mustState(t, scenarioA())
	first := s.MoveGen()
	second := s.MoveGen()
	if len(first) != len(second) {
		t.Fatalf("MoveGen changed between calls: %d then %d moves", len(first), len(second))
	}
	for i := range first {
		if first[i].Move != second[i].Move || first[i].State.Key() != second[i].State.Key() {
			t.Errorf("Move %d differs between calls", i)
		}
	}
}

func TestMoveGen_NoProbe(t *testing.T) {
	if succs := mustState(t, Grid{{0, 4}}).MoveGen(); succs != nil {
		t.Errorf("A state without a probe must generate no moves, got %d", len(succs))
	}
}

func TestPush_SingleAsteroid(t *testing.T) {
	// P A _ : push is legal, asteroid ends one cell further.
	s := mustState(t, Grid{{3, 2, 0}})
	succs := s.MoveGen()
	if len(succs) != 1 || succs[0].Move != Right {
		t.Fatalf("Expected exactly RIGHT, got %v", succs)
	}
	want := Grid{{0, 3, 2}}.Key()
	if got := succs[0].State.Key(); got != want {
		t.Errorf("Expected %q after push, got %q", want, got)
	}
}

func TestPush_RunOfAsteroids(t *testing.T) {
	// P A A _ : the whole run shifts by one; count is conserved.
	s := mustState(t, Grid{{3, 2, 2, 0}})
	succs := s.MoveGen()
	if len(succs) != 1 {
		t.Fatalf("Expected one move, got %d", len(succs))
	}
	next := succs[0].State
	want := Grid{{0, 3, 2, 2}}.Key()
	if got := next.Key(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := countCells(next.Grid(), Asteroid); got != 2 {
		t.Errorf("Expected 2 asteroids after push, got %d", got)
	}
}

func TestPush_Blocked(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
	}{
		{"run into wall", Grid{{3, 2, 2, 1}}},
		{"run off grid", Grid{{3, 2, 2}}},
		{"run onto dock", Grid{{3, 2, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, succ := range mustState(t, tc.grid).MoveGen() {
				if succ.Move == Right {
					t.Errorf("Push must be illegal for %v", tc.grid)
				}
			}
		})
	}
}

func TestApply_RoundTripWithoutPush(t *testing.T) {
	s := mustState(t, scenarioA())
	there := s.Apply(Right)
	if there == nil {
		t.Fatal("Expected RIGHT to be applicable")
	}
	back := there.Apply(Left)
	if back == nil {
		t.Fatal("Expected LEFT to be applicable")
	}
	if back.Key() != s.Key() {
		t.Errorf("Non-push move must round-trip: %q vs %q", back.Key(), s.Key())
	}
}

func TestApply_OutOfBounds(t *testing.T) {
	// Probe at the left edge: LEFT leaves the grid.
	if next := mustState(t, scenarioA()).Apply(Left); next != nil {
		t.Error("Expected nil for an out-of-bounds target")
	}
}

func TestApply_LeavesSourceUnmodified(t *testing.T) {
	s := mustState(t, Grid{{3, 2, 0}})
	before := s.Key()
	if next := s.Apply(Right); next == nil {
		t.Fatal("Expected RIGHT to be applicable")
	}
	if s.Key() != before {
		t.Error("Apply mutated the source state")
	}
}

func countCells(g Grid, target Cell) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == target {
				n++
			}
		}
	}
	return n
}
