package ean13

import (
	"fmt"

	"github.com/quietzone/ean13/bitrow"
)

// Writer encodes EAN-13 barcodes.
type Writer struct{}

// NewWriter creates an EAN-13 writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode renders contents as a barcode Matrix at least width x height
// modules, with quiet zones. contents is 12 digits (check digit computed)
// or 13 digits (check digit verified).
func (w *Writer) Encode(contents string, width, height int) (*bitrow.Matrix, error) {
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return renderCode(code, width, height), nil
}

// EncodeContents encodes contents into a 95-entry module pattern, true for
// dark. The returned pattern has no quiet zones.
func (w *Writer) EncodeContents(contents string) ([]bool, error) {
	contents, err := normalizeContents(contents)
	if err != nil {
		return nil, err
	}

	first := int(contents[0] - '0')
	parities := firstDigitParities[first]
	code := make([]bool, codeWidth)
	pos := 0

	pos += appendRuns(code, pos, startEndGuard, true)
	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		pos += appendRuns(code, pos, lAndGPatterns[digit], false)
	}
	pos += appendRuns(code, pos, middleGuard, false)
	for i := 7; i <= 12; i++ {
		digit := int(contents[i] - '0')
		pos += appendRuns(code, pos, lPatterns[digit], true)
	}
	appendRuns(code, pos, startEndGuard, true)
	return code, nil
}

// normalizeContents validates contents and appends the check digit when it
// is absent.
func normalizeContents(contents string) (string, error) {
	switch len(contents) {
	case 12:
		check := Checksum(contents)
		if check < 0 {
			return "", fmt.Errorf("%w: non-digit in %q", ErrFormat, contents)
		}
		contents += string(rune('0' + check))
	case 13:
		if !ValidChecksum(contents) {
			return "", fmt.Errorf("%w: %q fails checksum", ErrFormat, contents)
		}
	default:
		return "", fmt.Errorf("%w: need 12 or 13 digits, got %d", ErrFormat, len(contents))
	}
	for i := 0; i < len(contents); i++ {
		if contents[i] < '0' || contents[i] > '9' {
			return "", fmt.Errorf("%w: non-digit character %q", ErrFormat, contents[i])
		}
	}
	return contents, nil
}

// appendRuns writes a run-width pattern into code starting at pos. firstDark
// selects the color of the first run; runs alternate after that. Returns the
// number of modules written.
func appendRuns(code []bool, pos int, runs []int, firstDark bool) int {
	dark := firstDark
	n := 0
	for _, w := range runs {
		for j := 0; j < w; j++ {
			code[pos] = dark
			pos++
			n++
		}
		dark = !dark
	}
	return n
}

const quietZone = 10 // modules on each side of a rendered code

// renderCode scales a module pattern into a Matrix of at least width x
// height, centered, with quiet zones.
func renderCode(code []bool, width, height int) *bitrow.Matrix {
	inputWidth := len(code)
	fullWidth := inputWidth + 2*quietZone
	if width < fullWidth {
		width = fullWidth
	}
	if height < 1 {
		height = 1
	}

	multiple := width / fullWidth
	if multiple < 1 {
		multiple = 1
	}
	leftPad := (width - inputWidth*multiple) / 2

	out := bitrow.NewMatrix(width, height)
	for x, dark := range code {
		if dark {
			out.SetColumnRange(leftPad+x*multiple, multiple)
		}
	}
	return out
}
