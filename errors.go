package ean13

import "errors"

var (
	// ErrNotFound is returned when no EAN-13 barcode is found at the
	// expected position. Pattern mismatches, an unrecognized parity
	// sequence, and a missing guard all surface as ErrNotFound.
	ErrNotFound = errors.New("ean13: barcode not found")

	// ErrChecksum is returned when a structurally valid decode fails the
	// check-digit test.
	ErrChecksum = errors.New("ean13: checksum mismatch")

	// ErrFormat is returned when decoded content has the wrong shape, or
	// when contents given to the writer are not encodable.
	ErrFormat = errors.New("ean13: malformed content")
)
