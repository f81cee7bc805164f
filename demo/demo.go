// Package demo runs the two-scenario demonstration of logarithmic growth:
// a thousand-fold larger input only adds a handful of search steps.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charlesakinnurun/logarithmic-time/bsearch"
)

// DefaultScenarios returns the n = 1,000 and n = 1,000,000 scenarios.
func DefaultScenarios() (small, large Scenario) {
	small = Scenario{Name: "SCENARIO 1", Size: SmallSize}
	large = Scenario{Name: "SCENARIO 2", Size: LargeSize, Banner: " (1,000x target!)"}

	return small, large
}

// Range returns the ascending sequence 0..n-1.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

// Run executes the default scenarios, narrating to w.
func Run(w io.Writer, opts ...bsearch.Option) (Report, error) {
	small, large := DefaultScenarios()

	return RunScenarios(w, small, large, opts...)
}

// RunScenarios searches each scenario for its last element, narrating the
// steps to w, then prints the conclusion comparing the two.
// opts are passed to every bsearch.Search call after WithWriter(w), so a
// caller-supplied Narrator takes precedence over the line narration.
func RunScenarios(w io.Writer, small, large Scenario, opts ...bsearch.Option) (Report, error) {
	for _, sc := range []Scenario{small, large} {
		if sc.Size <= 0 {
			return Report{}, fmt.Errorf("%w: %s has size %d", ErrBadScenario, sc.Name, sc.Size)
		}
	}

	p := &printer{w: w}
	searchOpts := append([]bsearch.Option{bsearch.WithWriter(w)}, opts...)

	var rep Report
	var err error
	if rep.Small, err = runScenario(p, small, searchOpts); err != nil {
		return rep, err
	}
	if rep.Large, err = runScenario(p, large, searchOpts); err != nil {
		return rep, err
	}

	rep.Multiplier = large.Size / small.Size
	rep.AdditionalSteps = rep.Large.Outcome.Steps - rep.Small.Outcome.Steps

	p.separator()
	p.println("THE LOGARITHMIC CONCLUSION")
	p.printf("Input size increased by: %d x\n", rep.Multiplier)
	p.printf("Steps only increased by : %d additional steps.\n", rep.AdditionalSteps)
	p.println("This is why O(log n) is extremely efficient for large datasets")
	p.separator()

	return rep, p.err
}

// runScenario prints the scenario heading and runs the narrated search.
func runScenario(p *printer, sc Scenario, opts []bsearch.Option) (Result, error) {
	p.separator()
	p.printf("%s: n = %d%s\n", sc.Name, sc.Size, sc.Banner)
	p.separator()
	if p.err != nil {
		return Result{Scenario: sc}, p.err
	}

	out, err := bsearch.Search(Range(sc.Size), sc.Target(), opts...)
	res := Result{Scenario: sc, Outcome: out}
	if err != nil {
		return res, fmt.Errorf("demo: %s: %w", sc.Name, err)
	}

	return res, nil
}

// printer keeps the first write error and skips later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) separator() {
	p.println(strings.Repeat("-", separatorWidth))
}
