// Package bsearch provides a narrated, step-counting binary search over an
// ascending sequence of any ordered element type.
//
// What
//
//   - Repeatedly inspects the midpoint of an inclusive index range [low, high],
//     starting from [0, len-1], until the target is seen or the range is empty.
//   - Returns an Outcome containing:
//   - Steps: how many midpoints were inspected
//   - Found / Index: whether and where the target was seen
//   - Trace: the inspected indices, in order
//   - Emits narration through a Narrator hook (header, one line per step,
//     success or failure line). WithWriter installs the text narrator.
//
// Why
//
//	Every step discards about half of the remaining range, so the step count
//	grows with log2(n): a thousand-fold larger input costs roughly ten more
//	steps. The narration makes that growth visible.
//
// Strategies
//
//	The original demonstration narrows the upper bound with high = mid + 1
//	when the inspected value is greater than the target. That rule does not
//	drop the half it claims to. It still finds any target on the right of
//	every midpoint (the demonstration always searches for the last element),
//	but for targets on the left the range can stop shrinking.
//
//	  - StrategyReference (default) keeps that rule as-is. When the next
//	    midpoint would equal the one just inspected the loop could never
//	    finish; Search stops, narrates the stall and returns ErrStalled.
//	    No other input makes the reference rule loop forever.
//	  - StrategyCorrected uses high = mid - 1.
//
// Index guard
//
//	With high = mid + 1 the upper bound can reach len(seq). Reading seq[len]
//	would need the same index to compare both below and above the target,
//	so an unchanged slice never trips the guard. Midpoints are still
//	bounds-checked before the read and a bad one yields ErrIndexOutOfRange
//	instead of a panic.
//
// Complexity
//
//   - Time:   O(log n) steps for StrategyCorrected, and for StrategyReference
//     whenever it terminates normally.
//   - Memory: O(log n) for Trace.
//
// Usage
//
//	out, err := bsearch.Search(data, 999,
//	    bsearch.WithWriter(os.Stdout),
//	    bsearch.WithStrategy(bsearch.StrategyCorrected),
//	    bsearch.WithMaxSteps(64),
//	)
//	if err != nil {
//	    // ErrOptionViolation, ErrStalled, ErrIndexOutOfRange, ErrStepLimit,
//	    // ErrNarration or ctx.Err()
//	}
//	fmt.Println(out.Steps, out.Found)
package bsearch
