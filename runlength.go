package ean13

import (
	"math"

	"github.com/quietzone/ean13/bitrow"
)

// Match acceptance thresholds, expressed as a fraction of a unit module
// width. A candidate is rejected when its averaged variance reaches
// maxAvgVariance or any single run deviates by more than
// maxIndividualVariance.
const (
	maxAvgVariance        = 0.48
	maxIndividualVariance = 0.7
)

// recordRuns fills counters with the widths of successive same-color runs
// starting at start. The run at start may be dark or light; subsequent runs
// alternate. Returns ErrNotFound when start is past the row end or the row
// ends before len(counters) runs have begun.
func recordRuns(row *bitrow.Row, start int, counters []int) error {
	n := len(counters)
	for i := range counters {
		counters[i] = 0
	}
	end := row.Size()
	if start >= end {
		return ErrNotFound
	}
	dark := row.Get(start)
	pos := 0
	i := start
	for i < end {
		if row.Get(i) == dark {
			counters[pos]++
		} else {
			pos++
			if pos == n {
				break
			}
			counters[pos] = 1
			dark = !dark
		}
		i++
	}
	if pos == n || (pos == n-1 && i == end) {
		return nil
	}
	return ErrNotFound
}

// runVariance scores observed run widths against a target pattern. The
// result is total deviation normalized by the observed width; lower is
// better. Returns +Inf when the observation is narrower than the pattern or
// any single run deviates beyond maxIndividual unit modules.
func runVariance(counters, pattern []int, maxIndividual float64) float64 {
	total := 0
	patternWidth := 0
	for i := range counters {
		total += counters[i]
		patternWidth += pattern[i]
	}
	if total < patternWidth {
		return math.Inf(1)
	}

	unit := float64(total) / float64(patternWidth)
	maxIndividual *= unit

	variance := 0.0
	for i := range counters {
		d := float64(counters[i]) - float64(pattern[i])*unit
		if d < 0 {
			d = -d
		}
		if d > maxIndividual {
			return math.Inf(1)
		}
		variance += d
	}
	return variance / float64(total)
}

// matchDigit scores the 4 runs at offset against every pattern in families
// and returns the index of the best match. The cursor is not advanced; the
// caller does that from counters. Returns ErrNotFound when nothing scores
// inside the acceptance threshold.
func matchDigit(row *bitrow.Row, counters []int, offset int, families [][]int) (int, error) {
	if err := recordRuns(row, offset, counters); err != nil {
		return 0, err
	}
	best := -1
	bestVariance := maxAvgVariance
	for i, pattern := range families {
		v := runVariance(counters, pattern, maxIndividualVariance)
		if v < bestVariance {
			bestVariance = v
			best = i
		}
	}
	if best < 0 {
		return 0, ErrNotFound
	}
	return best, nil
}
