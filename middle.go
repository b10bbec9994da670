package ean13

import (
	"strings"

	"github.com/quietzone/ean13/bitrow"
)

// The first digit of an EAN-13 code is never drawn. It is implied by the
// parity sequence of the six digits that follow the start guard: each of
// those is encoded with either the L ("odd") or G ("even") pattern family,
// and the resulting 6-bit sequence picks the first digit from this table
// (bit 5 = parity of the first explicit digit, odd=0, even=1). For example
// in 5 123456 789012 the leading 5 is signified by encoding 1 odd, 2 even,
// 3 even, 4 odd, 5 odd, 6 even: 011001 = 0x19.
var firstDigitParities = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// prependFirstDigit resolves the implicit first digit from the accumulated
// parity mask and inserts it at the front of digits. Returns ErrNotFound
// when the mask matches no table entry.
func prependFirstDigit(digits *strings.Builder, parities int) error {
	for d := 0; d < 10; d++ {
		if parities == firstDigitParities[d] {
			rest := digits.String()
			digits.Reset()
			digits.WriteByte('0' + byte(d))
			digits.WriteString(rest)
			return nil
		}
	}
	return ErrNotFound
}

// decodeDigitGroup decodes up to digitsPerGroup digits at *pos, appending
// each to digits and advancing *pos past its runs. With trackParity set the
// returned mask has bit 5-x set when digit x matched the G family. The loop
// stops early, without error, if the row ends first; a failed match aborts
// immediately.
func decodeDigitGroup(row *bitrow.Row, pos *int, families [][]int, trackParity bool, digits *strings.Builder) (int, error) {
	counters := make([]int, digitRuns)
	end := row.Size()
	parities := 0

	for x := 0; x < digitsPerGroup && *pos < end; x++ {
		best, err := matchDigit(row, counters, *pos, families)
		if err != nil {
			return 0, err
		}
		digits.WriteByte('0' + byte(best%10))
		for _, c := range counters {
			*pos += c
		}
		if trackParity && best >= 10 {
			parities |= 1 << uint(digitsPerGroup-1-x)
		}
	}
	return parities, nil
}

// DecodeMiddle decodes the digit-bearing section of an EAN-13 symbol: the
// six left digits (whose L/G parity sequence yields the implicit first
// digit), the middle guard, and the six right digits. *pos must sit just
// past the start guard on entry and is left just past the last right-hand
// digit. Decoded digits are appended to digits, with the implicit first
// digit inserted in front. Fails fast with ErrNotFound; on error both *pos
// and digits may hold partial progress and must be discarded.
func (r *Reader) DecodeMiddle(row *bitrow.Row, pos *int, digits *strings.Builder) error {
	parities, err := decodeDigitGroup(row, pos, lAndGPatterns[:], true, digits)
	if err != nil {
		return err
	}

	if err := prependFirstDigit(digits, parities); err != nil {
		return err
	}

	guard, err := findMiddleGuard(row, *pos)
	if err != nil {
		return err
	}
	*pos = guard[1]

	// The right-hand group always uses the L family alone, so there is no
	// parity to track.
	_, err = decodeDigitGroup(row, pos, lPatterns[:], false, digits)
	return err
}
