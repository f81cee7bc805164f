// Package bsearch provides a narrated binary search over an ascending
// sequence, counting the midpoint inspections needed to find a target.
package bsearch

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// walker encapsulates mutable search state for one call.
type walker[T cmp.Ordered] struct {
	seq    []T
	target T
	opts   Options
	low    int
	high   int
	res    Outcome
}

// Search looks for target in seq, which must be sorted ascending with
// unique elements (not validated). It returns the number of steps taken
// and whether the target was seen at an inspected midpoint.
//
// "Not found" is a normal outcome and carries a nil error. Errors are
// ErrOptionViolation for bad options, ErrStalled when the reference branch
// rule can no longer make progress, ErrIndexOutOfRange for a midpoint
// outside seq, ErrStepLimit, ErrNarration, or the context error.
// The Outcome accumulated so far is returned alongside any error.
func Search[T cmp.Ordered](seq []T, target T, opts ...Option) (Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Outcome{Index: -1}, o.err
	}

	w := &walker[T]{
		seq:    seq,
		target: target,
		opts:   o,
		low:    0,
		high:   len(seq) - 1,
		res:    Outcome{Index: -1},
	}
	err := w.loop()

	return w.res, err
}

// loop runs the halving procedure until the target is found, the range is
// exhausted, or a stop condition fires.
func (w *walker[T]) loop() error {
	if err := w.narrate(w.opts.Narrator.Begin(w.target, len(w.seq))); err != nil {
		return err
	}

	for w.low <= w.high {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d steps, range [%d, %d]", ErrStepLimit, w.res.Steps, w.low, w.high)
		}

		w.res.Steps++
		mid := midpoint(w.low, w.high)
		if mid < 0 || mid >= len(w.seq) {
			return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, mid, len(w.seq))
		}
		guess := w.seq[mid]
		w.res.Trace = append(w.res.Trace, mid)

		if err := w.narrate(w.opts.Narrator.Step(w.res.Steps, mid, guess)); err != nil {
			return err
		}
		w.opts.Logger.Debug("probe",
			zap.Int("step", w.res.Steps),
			zap.Int("index", mid),
			zap.Any("value", guess),
			zap.Int("low", w.low),
			zap.Int("high", w.high),
		)

		if guess == w.target {
			w.res.Found = true
			w.res.Index = mid
			return w.narrate(w.opts.Narrator.Found(w.target, w.res.Steps))
		}
		w.narrow(mid, guess)

		// Same midpoint next time means same guess, same branch, same range.
		if w.low <= w.high && midpoint(w.low, w.high) == mid {
			return w.stall(mid)
		}
	}

	return w.narrate(w.opts.Narrator.NotFound(w.target, w.res.Steps))
}

// narrow discards part of the range according to the strategy.
func (w *walker[T]) narrow(mid int, guess T) {
	if guess > w.target {
		if w.opts.Strategy == StrategyCorrected {
			w.high = mid - 1
		} else {
			w.high = mid + 1
		}
		return
	}
	w.low = mid + 1
}

// stall reports a range that can no longer shrink.
func (w *walker[T]) stall(mid int) error {
	w.opts.Logger.Warn("search stalled",
		zap.Any("target", w.target),
		zap.Int("index", mid),
		zap.Int("steps", w.res.Steps),
		zap.Stringer("strategy", w.opts.Strategy),
	)
	if err := w.narrate(w.opts.Narrator.Stalled(w.target, w.res.Steps, mid)); err != nil {
		return err
	}

	return fmt.Errorf("%w: index %d re-inspected with range [%d, %d]", ErrStalled, mid, w.low, w.high)
}

func (w *walker[T]) narrate(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNarration, err)
	}
	return nil
}

// midpoint is floor((low+high)/2) for non-negative bounds.
func midpoint(low, high int) int {
	return low + (high-low)/2
}
