package asteroidfield

import (
	"context"
	"errors"
	"testing"
)

func namedSolvers(t *testing.T) []NamedSolver {
	t.Helper()
	var solvers []NamedSolver
	for _, name := range Algorithms() {
		solver, err := NewSolver(name)
		if err != nil {
			t.Fatal(err)
		}
		solvers = append(solvers, NamedSolver{Name: name, Solve: solver})
	}
	return solvers
}

func TestRunAll(t *testing.T) {
	outcomes, err := RunAll(context.Background(), scenarioA(), namedSolvers(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(outcomes) != len(Algorithms()) {
		t.Fatalf("Expected %d outcomes, got %d", len(Algorithms()), len(outcomes))
	}
	for i, out := range outcomes {
		if out.Name != Algorithms()[i] {
			t.Errorf("Outcome %d: expected %s, got %s", i, Algorithms()[i], out.Name)
		}
		if !out.Result.Found {
			t.Errorf("%s must solve scenario A", out.Name)
		}
	}
}

func TestRunAll_MalformedGrid(t *testing.T) {
	if _, err := RunAll(context.Background(), Grid{{0, 0}, {0}}, namedSolvers(t)); !errors.Is(err, errRaggedGrid) {
		t.Errorf("Expected the grid error, got %v", err)
	}
}

func TestRunAll_CancelledContext(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	slow := NamedSolver{Name: "slow", Solve: func(*State) Result {
		<-block
		return Result{}
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcomes, err := RunAll(ctx, scenarioA(), []NamedSolver{slow})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("Expected no outcomes from the blocked solver, got %d", len(outcomes))
	}
}
