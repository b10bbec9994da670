// Package binarize turns images into the binarized scan rows the decoder
// consumes, using greyscale conversion and global histogram thresholding.
package binarize

import (
	"errors"
	"image"

	"github.com/quietzone/ean13/bitrow"
)

// ErrBlackPoint is returned when a row's luminance histogram has no usable
// separation between dark and light, e.g. a blank row.
var ErrBlackPoint = errors.New("binarize: no distinct black point")

const (
	lumBits    = 5
	lumShift   = 8 - lumBits
	lumBuckets = 1 << lumBits
)

// Source holds the greyscale luminance of an image, row-major, one byte per
// pixel.
type Source struct {
	lum    []byte
	width  int
	height int
}

// NewSource converts img to luminance values, weighting channels
// (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit components. Fully
// transparent pixels read as white.
func NewSource(img image.Image) *Source {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	lum := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			if a == 0 {
				lum[y*w+x] = 0xFF
				continue
			}
			lum[y*w+x] = byte((306*(r>>8) + 601*(g>>8) + 117*(b>>8) + 0x200) >> 10)
		}
	}
	return &Source{lum: lum, width: w, height: h}
}

// NewGraySource wraps a greyscale image directly, skipping conversion.
func NewGraySource(img *image.Gray) *Source {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	lum := make([]byte, w*h)
	for y := 0; y < h; y++ {
		off := (bounds.Min.Y+y)*img.Stride + bounds.Min.X
		copy(lum[y*w:(y+1)*w], img.Pix[off:off+w])
	}
	return &Source{lum: lum, width: w, height: h}
}

// Width returns the image width in pixels.
func (s *Source) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *Source) Height() int { return s.height }

// Row copies row y's luminance into buf, allocating if buf is too small.
func (s *Source) Row(y int, buf []byte) []byte {
	if buf == nil || len(buf) < s.width {
		buf = make([]byte, s.width)
	}
	copy(buf, s.lum[y*s.width:(y+1)*s.width])
	return buf
}

// Bitmap binarizes rows of a Source on demand with a per-row global
// histogram threshold. Not safe for concurrent use; its scratch buffers are
// reused between calls.
type Bitmap struct {
	source  *Source
	lum     []byte
	buckets [lumBuckets]int
}

// NewBitmap creates a Bitmap over source.
func NewBitmap(source *Source) *Bitmap {
	return &Bitmap{source: source}
}

// Width returns the underlying image width.
func (b *Bitmap) Width() int { return b.source.Width() }

// Height returns the underlying image height.
func (b *Bitmap) Height() int { return b.source.Height() }

// BlackRow binarizes row y into row, allocating a new one when row is nil or
// too small. Pixels darker than the estimated black point, after a mild
// sharpening filter, become dark modules.
func (b *Bitmap) BlackRow(y int, row *bitrow.Row) (*bitrow.Row, error) {
	width := b.source.Width()
	if row == nil || row.Size() < width {
		row = bitrow.NewRow(width)
	} else {
		row.Clear()
	}

	if len(b.lum) < width {
		b.lum = make([]byte, width)
	}
	b.buckets = [lumBuckets]int{}
	lum := b.source.Row(y, b.lum)
	for x := 0; x < width; x++ {
		b.buckets[int(lum[x])>>lumShift]++
	}
	blackPoint, err := estimateBlackPoint(b.buckets[:])
	if err != nil {
		return nil, err
	}

	if width < 3 {
		for x := 0; x < width; x++ {
			if int(lum[x]) < blackPoint {
				row.Set(x)
			}
		}
		return row, nil
	}
	left := int(lum[0])
	center := int(lum[1])
	for x := 1; x < width-1; x++ {
		right := int(lum[x+1])
		if (center*4-left-right)/2 < blackPoint {
			row.Set(x)
		}
		left = center
		center = right
	}
	return row, nil
}

// estimateBlackPoint picks a threshold between the two dominant peaks of a
// luminance histogram: the valley that best separates them.
func estimateBlackPoint(buckets []int) (int, error) {
	n := len(buckets)
	maxCount := 0
	firstPeak := 0
	firstPeakSize := 0
	for x := 0; x < n; x++ {
		if buckets[x] > firstPeakSize {
			firstPeak = x
			firstPeakSize = buckets[x]
		}
		if buckets[x] > maxCount {
			maxCount = buckets[x]
		}
	}

	secondPeak := 0
	secondScore := 0
	for x := 0; x < n; x++ {
		d := x - firstPeak
		score := buckets[x] * d * d
		if score > secondScore {
			secondPeak = x
			secondScore = score
		}
	}

	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}
	if secondPeak-firstPeak <= n/16 {
		return 0, ErrBlackPoint
	}

	bestValley := secondPeak - 1
	bestScore := -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (maxCount - buckets[x])
		if score > bestScore {
			bestValley = x
			bestScore = score
		}
	}
	return bestValley << lumShift, nil
}
