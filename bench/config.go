// Package bench runs timed comparisons of the puzzle solvers over a suite of
// puzzles and turns the results into CSV statistics and a text report.
package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/asteroidfield"
)

// PuzzleSpec names one puzzle file in a suite.
type PuzzleSpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Suite is the YAML benchmark configuration.
type Suite struct {
	Puzzles    []PuzzleSpec `yaml:"puzzles"`
	Algorithms []string     `yaml:"algorithms"`
	Output     struct {
		CSV    string `yaml:"csv"`
		Report string `yaml:"report"`
	} `yaml:"output"`
}

// LoadSuite reads and validates a suite configuration file. When the suite
// names no algorithms, all known algorithms are filled in.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	if len(s.Puzzles) == 0 {
		return errors.New("suite names no puzzles")
	}
	for _, p := range s.Puzzles {
		if p.Name == "" || p.Path == "" {
			return fmt.Errorf("puzzle entry %+v needs both name and path", p)
		}
	}
	if len(s.Algorithms) == 0 {
		s.Algorithms = asteroidfield.Algorithms()
		return nil
	}
	for _, a := range s.Algorithms {
		if _, err := asteroidfield.NewSolver(a); err != nil {
			return err
		}
	}
	return nil
}
