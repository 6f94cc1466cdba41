package asteroidfield

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errNoInput = errors.New("no puzzle input")

// ParseGrid reads a grid of whitespace-separated integers. When the first
// non-empty line holds exactly two integers it is taken as a rows/cols
// header and that many rows must follow, each with that many columns.
// Otherwise the whole input is the grid and every row must have the same
// length. Malformed input is rejected here, before any search begins.
func ParseGrid(r io.Reader) (Grid, error) {
	var lines [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			lines = append(lines, fields)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}
	if len(lines) == 0 {
		return nil, errNoInput
	}

	if rows, cols, ok := parseHeader(lines[0]); ok {
		if len(lines)-1 < rows {
			return nil, fmt.Errorf("header promises %d rows, input has %d", rows, len(lines)-1)
		}
		grid, err := parseRows(lines[1 : 1+rows])
		if err != nil {
			return nil, err
		}
		if len(grid[0]) != cols {
			return nil, fmt.Errorf("header promises %d columns, rows have %d", cols, len(grid[0]))
		}
		return grid, nil
	}
	return parseRows(lines)
}

// LoadGrid reads a puzzle grid from a text file.
func LoadGrid(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening puzzle: %w", err)
	}
	defer f.Close()
	grid, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

func parseHeader(fields []string) (rows, cols int, ok bool) {
	if len(fields) != 2 {
		return 0, 0, false
	}
	rows, errR := strconv.Atoi(fields[0])
	cols, errC := strconv.Atoi(fields[1])
	if errR != nil || errC != nil || rows < 0 || cols < 0 {
		return 0, 0, false
	}
	return rows, cols, true
}

func parseRows(lines [][]string) (Grid, error) {
	grid := make(Grid, 0, len(lines))
	for i, fields := range lines {
		row := make([]Cell, 0, len(fields))
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad cell %q", i+1, tok)
			}
			row = append(row, Cell(v))
		}
		grid = append(grid, row)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}
