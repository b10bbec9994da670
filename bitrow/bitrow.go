// Package bitrow provides the bit-packed scan row consumed by the EAN-13
// reader and the module matrix produced by the writer.
package bitrow

import (
	"math/bits"
	"strings"
)

// Row is a single binarized scan line: bit i is true where module i is dark.
// A Row is not safe for concurrent mutation, but concurrent readers of a row
// that is no longer being written are fine.
type Row struct {
	words []uint32
	size  int
}

// NewRow creates a Row of the given width with all modules light.
func NewRow(size int) *Row {
	if size <= 0 {
		return &Row{}
	}
	return &Row{
		words: make([]uint32, (size+31)/32),
		size:  size,
	}
}

// Size returns the width of the row in modules.
func (r *Row) Size() int {
	return r.size
}

// Get reports whether module i is dark.
func (r *Row) Get(i int) bool {
	return r.words[i/32]&(1<<uint(i&0x1F)) != 0
}

// Set marks module i dark.
func (r *Row) Set(i int) {
	r.words[i/32] |= 1 << uint(i&0x1F)
}

// SetRange marks every module in [start, end) dark.
func (r *Row) SetRange(start, end int) {
	if start < 0 || end > r.size || end < start {
		panic("bitrow: invalid range")
	}
	for i := start; i < end; i++ {
		r.Set(i)
	}
}

// Clear resets every module to light.
func (r *Row) Clear() {
	for i := range r.words {
		r.words[i] = 0
	}
}

// NextSet returns the index of the first dark module at or after from, or
// the row size if there is none.
func (r *Row) NextSet(from int) int {
	if from >= r.size {
		return r.size
	}
	w := from / 32
	cur := r.words[w] & (^uint32(0) << uint(from&0x1F))
	for cur == 0 {
		w++
		if w == len(r.words) {
			return r.size
		}
		cur = r.words[w]
	}
	i := w*32 + bits.TrailingZeros32(cur)
	if i > r.size {
		return r.size
	}
	return i
}

// NextUnset returns the index of the first light module at or after from, or
// the row size if there is none.
func (r *Row) NextUnset(from int) int {
	if from >= r.size {
		return r.size
	}
	w := from / 32
	cur := ^r.words[w] & (^uint32(0) << uint(from&0x1F))
	for cur == 0 {
		w++
		if w == len(r.words) {
			return r.size
		}
		cur = ^r.words[w]
	}
	i := w*32 + bits.TrailingZeros32(cur)
	if i > r.size {
		return r.size
	}
	return i
}

// IsRange reports whether every module in [start, end) matches dark.
func (r *Row) IsRange(start, end int, dark bool) bool {
	if start < 0 || end > r.size || end < start {
		panic("bitrow: invalid range")
	}
	for i := start; i < end; i++ {
		if r.Get(i) != dark {
			return false
		}
	}
	return true
}

// Reverse flips the row end to end, as if the barcode were scanned
// right to left.
func (r *Row) Reverse() {
	if r.size == 0 {
		return
	}
	rev := make([]uint32, len(r.words))
	used := (r.size-1)/32 + 1
	for i := 0; i < used; i++ {
		rev[used-1-i] = bits.Reverse32(r.words[i])
	}
	if r.size != used*32 {
		shift := uint(used*32 - r.size)
		cur := rev[0] >> shift
		for i := 1; i < used; i++ {
			next := rev[i]
			cur |= next << (32 - shift)
			rev[i-1] = cur
			cur = next >> shift
		}
		rev[used-1] = cur
	}
	r.words = rev
}

// Clone returns an independent copy of the row.
func (r *Row) Clone() *Row {
	w := make([]uint32, len(r.words))
	copy(w, r.words)
	return &Row{words: w, size: r.size}
}

// String renders the row with 'X' for dark modules and '.' for light ones.
func (r *Row) String() string {
	var sb strings.Builder
	sb.Grow(r.size + r.size/8 + 1)
	for i := 0; i < r.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if r.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
