// Package bsearch defines the outcome record, strategies, hooks and
// functional options for the narrated range search.
package bsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for Search execution.
var (
	// ErrStalled is returned when the reference branch rule leaves the range
	// in a state where the same midpoint would be inspected forever.
	ErrStalled = errors.New("bsearch: search range stopped shrinking")

	// ErrIndexOutOfRange is returned when a midpoint falls outside the sequence.
	// It requires the sequence to change while the search runs.
	ErrIndexOutOfRange = errors.New("bsearch: midpoint outside sequence")

	// ErrStepLimit is returned when WithMaxSteps caps the loop before it ends.
	ErrStepLimit = errors.New("bsearch: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bsearch: invalid option supplied")

	// ErrNarration wraps a failure reported by the Narrator.
	ErrNarration = errors.New("bsearch: narration failed")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("bsearch: unknown strategy")
)

// Strategy selects the branch rule applied when the inspected value is
// greater than the target.
//
//   - StrategyReference: high = mid + 1. This is the behaviour of the
//     original demonstration and it is kept on purpose. For targets left of
//     a midpoint the range may fail to shrink; Search reports that state as
//     ErrStalled instead of looping forever.
//   - StrategyCorrected: high = mid - 1, the textbook rule. Always terminates
//     and finds every element present in a sorted sequence.
type Strategy int

const (
	// StrategyReference reproduces the original branch rule, defect included.
	StrategyReference Strategy = iota

	// StrategyCorrected narrows the upper bound below the midpoint.
	StrategyCorrected
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyReference:
		return "reference"
	case StrategyCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name ("reference" or "corrected", case-insensitive)
// to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reference":
		return StrategyReference, nil
	case "corrected":
		return StrategyCorrected, nil
	default:
		return StrategyReference, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Outcome is the result of one Search call.
//   - Steps: number of midpoint inspections performed.
//   - Found: whether the target was observed at an inspected midpoint.
//   - Index: position of the match, or -1 when Found is false.
//   - Trace: inspected midpoints in order; len(Trace) == Steps.
type Outcome struct {
	Steps int
	Found bool
	Index int
	Trace []int
}

// Narrator receives the observable events of a search. Values are passed
// as any so that one Narrator serves every element type.
// Returning an error from any method aborts the search with ErrNarration.
type Narrator interface {
	// Begin is called once before the first step.
	Begin(target any, size int) error

	// Step is called after the value at index has been read.
	Step(step, index int, value any) error

	// Found is called when the target is located.
	Found(target any, steps int) error

	// NotFound is called when the range is exhausted.
	NotFound(target any, steps int) error

	// Stalled is called when the range can no longer shrink around index.
	Stalled(target any, steps, index int) error
}

// Option configures Search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters and hooks for a single Search call.
type Options struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// Strategy picks the branch rule; StrategyReference by default.
	Strategy Strategy

	// MaxSteps, if > 0, stops the loop after that many inspections.
	MaxSteps int

	// Narrator receives per-step narration. Silent by default.
	Narrator Narrator

	// Logger receives debug events per step and a warning on stalls.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - StrategyReference
//   - no step cap (MaxSteps == 0)
//   - a silent Narrator
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyReference,
		MaxSteps: 0,
		Narrator: nopNarrator{},
		Logger:   zap.NewNop(),
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the branch rule.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyReference, StrategyCorrected:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
		}
	}
}

// WithMaxSteps caps the number of inspections.
//
//	n > 0: stop with ErrStepLimit once n steps ran without an answer
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithWriter narrates the search as text lines written to w.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Narrator = NewLineNarrator(w)
		}
	}
}

// WithNarrator installs a custom Narrator.
func WithNarrator(n Narrator) Option {
	return func(o *Options) {
		if n != nil {
			o.Narrator = n
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
