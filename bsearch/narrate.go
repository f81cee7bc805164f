package bsearch

import (
	"fmt"
	"io"
)

// LineNarrator writes one human-readable line per search event.
//
//	Searching for 999 in a list of size 1000....
//	Step 1: Checked index 499 (Value: 499)
//	...
//	-> Success! Found 999 in 10 steps
type LineNarrator struct {
	w io.Writer
}

// NewLineNarrator returns a LineNarrator writing to w.
func NewLineNarrator(w io.Writer) *LineNarrator {
	return &LineNarrator{w: w}
}

func (n *LineNarrator) Begin(target any, size int) error {
	return n.printf("Searching for %v in a list of size %d....\n", target, size)
}

func (n *LineNarrator) Step(step, index int, value any) error {
	return n.printf("Step %d: Checked index %d (Value: %v)\n", step, index, value)
}

func (n *LineNarrator) Found(target any, steps int) error {
	return n.printf("-> Success! Found %v in %d steps\n", target, steps)
}

func (n *LineNarrator) NotFound(target any, steps int) error {
	return n.printf("-> %v not found after %d steps.\n", target, steps)
}

func (n *LineNarrator) Stalled(target any, steps, index int) error {
	return n.printf("-> %v not found after %d steps (search stalled at index %d).\n", target, steps, index)
}

func (n *LineNarrator) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(n.w, format, args...)
	return err
}

// nopNarrator discards every event.
type nopNarrator struct{}

func (nopNarrator) Begin(any, int) error        { return nil }
func (nopNarrator) Step(int, int, any) error    { return nil }
func (nopNarrator) Found(any, int) error        { return nil }
func (nopNarrator) NotFound(any, int) error     { return nil }
func (nopNarrator) Stalled(any, int, int) error { return nil }
