package asteroidfield

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGrid_WithHeader(t *testing.T) {
	input := `2 3
0 0 4
3 0 0
`
	grid, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := Grid{{0, 0, 4}, {3, 0, 0}}
	if grid.Key() != want.Key() {
		t.Errorf("Expected %q, got %q", want.Key(), grid.Key())
	}
}

func TestParseGrid_WithoutHeader(t *testing.T) {
	input := `0 0 0 4
0 2 0 0
3 0 0 0
0 0 0 0
`
	grid, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if grid.Key() != scenarioA().Key() {
		t.Errorf("Expected scenario A, got %q", grid.Key())
	}
}

func TestParseGrid_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", "\n  \n"},
		{"ragged rows", "0 0 0\n0 0\n"},
		{"bad token", "0 x 0\n"},
		{"unknown cell code", "0 9 0\n"},
		{"header row mismatch", "3 2\n0 0\n0 0\n"},
		{"header col mismatch", "2 3\n0 0\n0 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(strings.NewReader(tc.input)); err == nil {
				t.Errorf("Expected an error for %q", tc.input)
			}
		})
	}
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte("2 2\n3 0\n0 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	grid, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := Grid{{3, 0}, {0, 4}}
	if grid.Key() != want.Key() {
		t.Errorf("Expected %q, got %q", want.Key(), grid.Key())
	}

	if _, err := LoadGrid(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestParseGrid_NoInputError(t *testing.T) {
	if _, err := ParseGrid(strings.NewReader("")); !errors.Is(err, errNoInput) {
		t.Errorf("Expected errNoInput, got %v", err)
	}
}
