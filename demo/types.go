// Package demo defines the scenarios and report of the logarithmic-time
// demonstration.
package demo

import (
	"errors"

	"github.com/charlesakinnurun/logarithmic-time/bsearch"
)

// Default scenario sizes.
const (
	SmallSize = 1_000
	LargeSize = 1_000_000
)

// separatorWidth is the number of dashes in a separator line.
const separatorWidth = 30

// ErrBadScenario is returned when a scenario has a non-positive size.
var ErrBadScenario = errors.New("demo: scenario size must be positive")

// Scenario describes one searched input: the sequence 0..Size-1 searched
// for its last element.
type Scenario struct {
	// Name is printed before the size, e.g. "SCENARIO 1".
	Name string

	// Size is the number of elements generated.
	Size int

	// Banner is appended to the scenario heading.
	Banner string
}

// Target returns the searched value, the last element of the sequence.
func (s Scenario) Target() int {
	return s.Size - 1
}

// Result pairs a scenario with its search outcome.
type Result struct {
	Scenario Scenario
	Outcome  bsearch.Outcome
}

// Report is the comparison of the small and large scenarios.
//   - Multiplier: Large.Size / Small.Size (integer division).
//   - AdditionalSteps: Large.Outcome.Steps - Small.Outcome.Steps.
type Report struct {
	Small           Result
	Large           Result
	Multiplier      int
	AdditionalSteps int
}
