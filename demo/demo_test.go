package demo_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charlesakinnurun/logarithmic-time/bsearch"
	"github.com/charlesakinnurun/logarithmic-time/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRange covers the generated sequences.
func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, demo.Range(4))
	assert.Empty(t, demo.Range(0))
	assert.Empty(t, demo.Range(-3))

	seq := demo.Range(1_000)
	require.Len(t, seq, 1_000)
	assert.Equal(t, 999, seq[len(seq)-1])
}

// TestDefaultScenarios pins the two demonstration inputs.
func TestDefaultScenarios(t *testing.T) {
	small, large := demo.DefaultScenarios()
	assert.Equal(t, 1_000, small.Size)
	assert.Equal(t, 999, small.Target())
	assert.Equal(t, 1_000_000, large.Size)
	assert.Equal(t, 999_999, large.Target())
	assert.Equal(t, " (1,000x target!)", large.Banner)
}

// TestRun checks the report and the shape of the full narration.
func TestRun(t *testing.T) {
	var buf bytes.Buffer
	rep, err := demo.Run(&buf)
	require.NoError(t, err)

	assert.True(t, rep.Small.Outcome.Found)
	assert.True(t, rep.Large.Outcome.Found)
	assert.Equal(t, 10, rep.Small.Outcome.Steps)
	assert.Equal(t, 20, rep.Large.Outcome.Steps)
	assert.Equal(t, 1_000, rep.Multiplier)
	assert.Equal(t, 10, rep.AdditionalSteps)

	out := buf.String()
	assert.Contains(t, out, "SCENARIO 1: n = 1000\n")
	assert.Contains(t, out, "SCENARIO 2: n = 1000000 (1,000x target!)\n")
	assert.Contains(t, out, "Searching for 999 in a list of size 1000....\n")
	assert.Contains(t, out, "-> Success! Found 999 in 10 steps\n")
	assert.Contains(t, out, "-> Success! Found 999999 in 20 steps\n")
	assert.Equal(t, 30, strings.Count(out, "\nStep "), "one line per step across both searches")
	assert.Equal(t, 1, strings.Count(out, "Steps only increased by"), "delta is printed once")
	assert.True(t, strings.HasSuffix(out,
		"THE LOGARITHMIC CONCLUSION\n"+
			"Input size increased by: 1000 x\n"+
			"Steps only increased by : 10 additional steps.\n"+
			"This is why O(log n) is extremely efficient for large datasets\n"+
			strings.Repeat("-", 30)+"\n"))
}

// TestRun_Corrected gives the same numbers under the textbook rule.
func TestRun_Corrected(t *testing.T) {
	var reference, corrected bytes.Buffer
	rep1, err := demo.Run(&reference)
	require.NoError(t, err)
	rep2, err := demo.Run(&corrected, bsearch.WithStrategy(bsearch.StrategyCorrected))
	require.NoError(t, err)

	assert.Equal(t, rep1, rep2)
	assert.Equal(t, reference.String(), corrected.String())
}

// TestRunScenarios_Exact compares the complete output for small inputs.
func TestRunScenarios_Exact(t *testing.T) {
	var buf bytes.Buffer
	rep, err := demo.RunScenarios(&buf,
		demo.Scenario{Name: "SMALL", Size: 8},
		demo.Scenario{Name: "LARGE", Size: 64, Banner: " (8x)"},
	)
	require.NoError(t, err)
	assert.Equal(t, 8, rep.Multiplier)
	assert.Equal(t, 3, rep.AdditionalSteps)
	assert.Equal(t, []int{31, 47, 55, 59, 61, 62, 63}, rep.Large.Outcome.Trace)

	sep := strings.Repeat("-", 30) + "\n"
	want := sep +
		"SMALL: n = 8\n" +
		sep +
		"Searching for 7 in a list of size 8....\n" +
		"Step 1: Checked index 3 (Value: 3)\n" +
		"Step 2: Checked index 5 (Value: 5)\n" +
		"Step 3: Checked index 6 (Value: 6)\n" +
		"Step 4: Checked index 7 (Value: 7)\n" +
		"-> Success! Found 7 in 4 steps\n" +
		sep +
		"LARGE: n = 64 (8x)\n" +
		sep +
		"Searching for 63 in a list of size 64....\n" +
		"Step 1: Checked index 31 (Value: 31)\n" +
		"Step 2: Checked index 47 (Value: 47)\n" +
		"Step 3: Checked index 55 (Value: 55)\n" +
		"Step 4: Checked index 59 (Value: 59)\n" +
		"Step 5: Checked index 61 (Value: 61)\n" +
		"Step 6: Checked index 62 (Value: 62)\n" +
		"Step 7: Checked index 63 (Value: 63)\n" +
		"-> Success! Found 63 in 7 steps\n" +
		sep +
		"THE LOGARITHMIC CONCLUSION\n" +
		"Input size increased by: 8 x\n" +
		"Steps only increased by : 3 additional steps.\n" +
		"This is why O(log n) is extremely efficient for large datasets\n" +
		sep
	assert.Equal(t, want, buf.String())
}

// TestRunScenarios_Idempotent runs the demonstration twice.
func TestRunScenarios_Idempotent(t *testing.T) {
	small := demo.Scenario{Name: "A", Size: 100}
	large := demo.Scenario{Name: "B", Size: 100_000}

	var first, second bytes.Buffer
	rep1, err := demo.RunScenarios(&first, small, large)
	require.NoError(t, err)
	rep2, err := demo.RunScenarios(&second, small, large)
	require.NoError(t, err)

	assert.Equal(t, rep1, rep2)
	assert.Equal(t, first.String(), second.String())
}

// TestRunScenarios_BadSize rejects empty scenarios before printing.
func TestRunScenarios_BadSize(t *testing.T) {
	var buf bytes.Buffer
	_, err := demo.RunScenarios(&buf, demo.Scenario{Name: "EMPTY", Size: 0}, demo.Scenario{Name: "B", Size: 10})
	assert.ErrorIs(t, err, demo.ErrBadScenario)
	assert.Empty(t, buf.String())
}

// TestRunScenarios_SearchError surfaces a capped search.
func TestRunScenarios_SearchError(t *testing.T) {
	var buf bytes.Buffer
	rep, err := demo.Run(&buf, bsearch.WithMaxSteps(15))
	assert.ErrorIs(t, err, bsearch.ErrStepLimit)
	assert.Equal(t, 10, rep.Small.Outcome.Steps, "small scenario fits the cap")
	assert.Equal(t, 15, rep.Large.Outcome.Steps)
	assert.NotContains(t, buf.String(), "THE LOGARITHMIC CONCLUSION")
}

// failWriter fails after limit bytes.
type failWriter struct {
	limit int
	n     int
}

var errClosed = errors.New("writer closed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errClosed
	}
	w.n += len(p)
	return len(p), nil
}

// TestRunScenarios_WriteError stops on the first failed write.
func TestRunScenarios_WriteError(t *testing.T) {
	small := demo.Scenario{Name: "A", Size: 8}
	large := demo.Scenario{Name: "B", Size: 64}

	// Heading lines fail.
	_, err := demo.RunScenarios(&failWriter{limit: 10}, small, large)
	assert.ErrorIs(t, err, errClosed)

	// Narration inside the search fails.
	_, err = demo.RunScenarios(&failWriter{limit: 100}, small, large)
	assert.ErrorIs(t, err, bsearch.ErrNarration)
}
