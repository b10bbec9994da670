package ean13

// Guard templates, in unit module widths. Bars and spaces alternate; the
// first entry of the start/end guard is a bar, the middle guard begins on a
// space.
var (
	startEndGuard = []int{1, 1, 1}
	middleGuard   = []int{1, 1, 1, 1, 1}
)

// lPatterns holds the "L" (odd parity) module widths for digits 0-9. Each
// digit spans exactly 4 runs totalling 7 modules.
var lPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// lAndGPatterns covers both parities: indices 0-9 are the L patterns,
// 10-19 the "G" (even parity) patterns, each the reverse of its L pattern.
var lAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		lAndGPatterns[i] = lPatterns[i]
	}
	for i := 10; i < 20; i++ {
		l := lPatterns[i-10]
		g := make([]int, len(l))
		for j := range l {
			g[j] = l[len(l)-1-j]
		}
		lAndGPatterns[i] = g
	}
}

const (
	// digitRuns is the number of alternating runs encoding one digit.
	digitRuns = 4
	// digitsPerGroup is the number of explicitly encoded digits on each
	// side of the middle guard.
	digitsPerGroup = 6
)

// codeWidth is the total width of an EAN-13 symbol in modules:
// start guard + 6 digits + middle guard + 6 digits + end guard.
const codeWidth = 3 + 7*digitsPerGroup + 5 + 7*digitsPerGroup + 3
