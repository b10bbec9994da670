package ean13

import "github.com/quietzone/ean13/bitrow"

// findGuard slides a window over the row from offset looking for the first
// run sequence matching template, returning its [start, end) range. On a
// miss the window realigns by dropping its two leading runs.
func findGuard(row *bitrow.Row, offset int, lightFirst bool, template []int, counters []int) ([2]int, error) {
	width := row.Size()
	if lightFirst {
		offset = row.NextUnset(offset)
	} else {
		offset = row.NextSet(offset)
	}
	pos := 0
	start := offset
	n := len(template)
	light := lightFirst

	for x := offset; x < width; x++ {
		if row.Get(x) != light {
			counters[pos]++
			continue
		}
		if pos == n-1 {
			if runVariance(counters, template, maxIndividualVariance) < maxAvgVariance {
				return [2]int{start, x}, nil
			}
			start += counters[0] + counters[1]
			copy(counters, counters[2:pos+1])
			counters[pos-1] = 0
			counters[pos] = 0
			pos--
		} else {
			pos++
		}
		counters[pos] = 1
		light = !light
	}
	return [2]int{}, ErrNotFound
}

// findStartGuard locates the left guard pattern, requiring a quiet zone at
// least as wide as the guard itself before it.
func findStartGuard(row *bitrow.Row) ([2]int, error) {
	counters := make([]int, len(startEndGuard))
	next := 0
	for {
		for i := range counters {
			counters[i] = 0
		}
		r, err := findGuard(row, next, false, startEndGuard, counters)
		if err != nil {
			return [2]int{}, err
		}
		start := r[0]
		next = r[1]
		quiet := start - (next - start)
		if quiet >= 0 && row.IsRange(quiet, start, false) {
			return r, nil
		}
	}
}

// findMiddleGuard locates the middle separator from offset onward. The
// separator starts on a light module.
func findMiddleGuard(row *bitrow.Row, offset int) ([2]int, error) {
	return findGuard(row, offset, true, middleGuard, make([]int, len(middleGuard)))
}

// findEndGuard locates the right guard pattern from offset onward.
func findEndGuard(row *bitrow.Row, offset int) ([2]int, error) {
	return findGuard(row, offset, false, startEndGuard, make([]int, len(startEndGuard)))
}
