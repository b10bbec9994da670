package ean13

import (
	"strings"

	"github.com/quietzone/ean13/binarize"
	"github.com/quietzone/ean13/bitrow"
)

// Reader decodes EAN-13 barcodes. It holds no state: one Reader may serve
// any number of concurrent decode calls, each over its own row and cursor.
type Reader struct{}

// NewReader creates an EAN-13 reader.
func NewReader() *Reader {
	return &Reader{}
}

// Format returns FormatEAN13, the symbology this reader expects.
func (r *Reader) Format() Format {
	return FormatEAN13
}

// DecodeRow decodes an EAN-13 barcode from a single scan row. rowNumber is
// only used to place the result points.
func (r *Reader) DecodeRow(rowNumber int, row *bitrow.Row) (*Result, error) {
	start, err := findStartGuard(row)
	if err != nil {
		return nil, err
	}

	var digits strings.Builder
	pos := start[1]
	if err := r.DecodeMiddle(row, &pos, &digits); err != nil {
		return nil, err
	}

	end, err := findEndGuard(row, pos)
	if err != nil {
		return nil, err
	}

	// A quiet zone at least as wide as the end guard must follow it.
	quietEnd := end[1] + (end[1] - end[0])
	if quietEnd >= row.Size() || !row.IsRange(end[1], quietEnd, false) {
		return nil, ErrNotFound
	}

	text := digits.String()
	if len(text) != 13 {
		return nil, ErrFormat
	}
	if !ValidChecksum(text) {
		return nil, ErrChecksum
	}

	return &Result{
		Text:   text,
		Format: FormatEAN13,
		Points: []Point{
			{X: float64(start[0]+start[1]) / 2.0, Y: float64(rowNumber)},
			{X: float64(end[0]+end[1]) / 2.0, Y: float64(rowNumber)},
		},
		SymbologyID: "]E0",
	}, nil
}

// Decode scans a binarized image for an EAN-13 barcode, working rows from
// the vertical middle outward and retrying each row reversed. opts may be
// nil.
func (r *Reader) Decode(bm *binarize.Bitmap, opts *ScanOptions) (*Result, error) {
	width := bm.Width()
	height := bm.Height()
	row := bitrow.NewRow(width)

	tryHarder := opts != nil && opts.TryHarder
	rowStep := height >> 5
	if tryHarder {
		rowStep = height >> 8
	}
	if rowStep < 1 {
		rowStep = 1
	}

	maxLines := 15
	if tryHarder {
		maxLines = height
	}

	middle := height / 2
	for x := 0; x < maxLines; x++ {
		stepsOut := (x + 1) / 2
		rowNumber := middle
		if x&1 == 0 {
			rowNumber += rowStep * stepsOut
		} else {
			rowNumber -= rowStep * stepsOut
		}
		if rowNumber < 0 || rowNumber >= height {
			break
		}

		var err error
		row, err = bm.BlackRow(rowNumber, row)
		if err != nil {
			continue
		}

		for attempt := 0; attempt < 2; attempt++ {
			if attempt == 1 {
				row.Reverse()
			}
			result, err := r.DecodeRow(rowNumber, row)
			if err != nil {
				continue
			}
			if attempt == 1 {
				// Map points back into the unreversed image.
				for i := range result.Points {
					result.Points[i].X = float64(width) - result.Points[i].X - 1
				}
			}
			return result, nil
		}
	}
	return nil, ErrNotFound
}
