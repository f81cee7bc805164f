// Package logtime is a small, narrated demonstration of logarithmic time:
// binary search over 1,000 and then 1,000,000 sorted integers, printing
// every midpoint it inspects and how few extra steps the larger input costs.
//
// What is inside?
//
//	bsearch/    generic, step-counting range search with narration hooks,
//	            two branch strategies and stall detection
//	demo/       the two-scenario driver and its conclusion block
//	logger/     process-wide zap logger (JSON on stderr)
//	cmd/logtime the executable
//
// Why it stays small:
//
//	Each step halves the candidate range, so the step count is about log2(n).
//	Doubling the input adds one step; multiplying it by 1,000 adds about ten.
//
// Quick picture for 128 items:
//
//	128 → 64 → 32 → 16 → 8 → 4 → 2 → 1   (7 steps, 2^7 = 128)
//
// Known defect, kept on purpose:
//
//	The original demonstration narrows the upper bound with high = mid + 1.
//	bsearch.StrategyReference reproduces it and reports the states where it
//	would spin forever as bsearch.ErrStalled; bsearch.StrategyCorrected uses
//	the textbook high = mid - 1. Both agree on the demonstration's targets.
//
//	go run github.com/charlesakinnurun/logarithmic-time/cmd/logtime
package logtime
