package ean13

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietzone/ean13/bitrow"
)

func TestRecordRuns(t *testing.T) {
	// 3 dark, 2 light, 1 dark, 4 light.
	row := bitrow.NewRow(10)
	row.SetRange(0, 3)
	row.Set(5)

	counters := make([]int, 4)
	require.NoError(t, recordRuns(row, 0, counters))
	assert.Equal(t, []int{3, 2, 1, 4}, counters)
}

func TestRecordRunsStartsOnEitherColor(t *testing.T) {
	row := bitrow.NewRow(10)
	row.SetRange(2, 5)
	row.SetRange(7, 10)

	counters := make([]int, 4)
	require.NoError(t, recordRuns(row, 0, counters))
	assert.Equal(t, []int{2, 3, 2, 3}, counters)
}

func TestRecordRunsPastEnd(t *testing.T) {
	row := bitrow.NewRow(10)
	counters := make([]int, 4)
	assert.ErrorIs(t, recordRuns(row, 10, counters), ErrNotFound)
	assert.ErrorIs(t, recordRuns(row, 50, counters), ErrNotFound)
}

func TestRecordRunsTooFewTransitions(t *testing.T) {
	// Only two runs before the row ends.
	row := bitrow.NewRow(10)
	row.SetRange(0, 4)
	counters := make([]int, 4)
	assert.ErrorIs(t, recordRuns(row, 0, counters), ErrNotFound)
}

func TestRunVariancePerfectMatch(t *testing.T) {
	assert.Equal(t, 0.0, runVariance([]int{3, 2, 1, 1}, []int{3, 2, 1, 1}, maxIndividualVariance))
	// Uniformly scaled observation still matches exactly.
	assert.Equal(t, 0.0, runVariance([]int{6, 4, 2, 2}, []int{3, 2, 1, 1}, maxIndividualVariance))
}

func TestRunVarianceTooNarrow(t *testing.T) {
	v := runVariance([]int{1, 1, 1, 1}, []int{3, 2, 1, 1}, maxIndividualVariance)
	assert.True(t, math.IsInf(v, 1))
}

func TestRunVarianceIndividualCap(t *testing.T) {
	// One run far off even though the total width is plausible.
	v := runVariance([]int{7, 1, 1, 5}, []int{3, 2, 1, 1}, maxIndividualVariance)
	assert.True(t, math.IsInf(v, 1))
}

func TestMatchDigit(t *testing.T) {
	// Each digit spans exactly 7 modules; the row ends with the digit so
	// the final run is bounded by the row edge.
	for digit, pattern := range lPatterns {
		row := bitrow.NewRow(7)
		pos := 0
		dark := true
		for _, w := range pattern {
			if dark {
				row.SetRange(pos, pos+w)
			}
			pos += w
			dark = !dark
		}

		counters := make([]int, digitRuns)
		got, err := matchDigit(row, counters, 0, lPatterns[:])
		require.NoError(t, err, "digit %d", digit)
		assert.Equal(t, digit, got)
	}
}

func TestMatchDigitGFamily(t *testing.T) {
	// Digit 2 in the G family: L pattern {2,1,2,2} reversed.
	row := bitrow.NewRow(8)
	pos := 0
	dark := false
	for _, w := range []int{2, 2, 1, 2} {
		if dark {
			row.SetRange(pos, pos+w)
		}
		pos += w
		dark = !dark
	}

	counters := make([]int, digitRuns)
	got, err := matchDigit(row, counters, 0, lAndGPatterns[:])
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestMatchDigitNoMatch(t *testing.T) {
	row := bitrow.NewRow(16)
	row.SetRange(0, 16)
	counters := make([]int, digitRuns)
	_, err := matchDigit(row, counters, 0, lAndGPatterns[:])
	assert.ErrorIs(t, err, ErrNotFound)
}
