// Package ean13 decodes and encodes EAN-13 barcodes from binarized scan
// lines. The reader consumes a bitrow.Row (one image row reduced to dark and
// light modules) and produces the 13-digit code; the writer does the reverse.
package ean13

// Format identifies a barcode symbology. This library reads exactly one, but
// callers dispatching among several symbology readers key on this tag.
type Format int

const (
	// FormatEAN13 is the EAN-13 retail barcode symbology.
	FormatEAN13 Format = iota
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatEAN13:
		return "EAN_13"
	default:
		return "UNKNOWN"
	}
}

// Point marks a location of interest in the scanned image, in pixel
// coordinates.
type Point struct {
	X, Y float64
}

// Result is a successfully decoded barcode.
type Result struct {
	// Text is the 13-digit code, check digit included.
	Text string
	// Format is always FormatEAN13 for results produced by this library.
	Format Format
	// Points are the centers of the start and end guard patterns.
	Points []Point
	// SymbologyID is the ISO/IEC 15424 symbology identifier ("]E0").
	SymbologyID string
}

// ScanOptions controls image scanning in Reader.Decode.
type ScanOptions struct {
	// TryHarder spends more time scanning: every row is examined instead of
	// a spread of 15 around the vertical middle.
	TryHarder bool
}
