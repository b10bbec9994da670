package ean13

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietzone/ean13/binarize"
	"github.com/quietzone/ean13/bitrow"
)

// matrixImage renders a writer Matrix as a greyscale image, dark modules
// black.
func matrixImage(m *bitrow.Matrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestDecodeFromImage(t *testing.T) {
	const code = "5901234123457"
	matrix, err := NewWriter().Encode(code, 0, 40)
	require.NoError(t, err)

	bitmap := binarize.NewBitmap(binarize.NewGraySource(matrixImage(matrix)))
	result, err := NewReader().Decode(bitmap, nil)
	require.NoError(t, err)
	assert.Equal(t, code, result.Text)
}

func TestDecodeFromMirroredImage(t *testing.T) {
	const code = "4006381333931"
	matrix, err := NewWriter().Encode(code, 0, 40)
	require.NoError(t, err)

	src := matrixImage(matrix)
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	mirrored := image.NewGray(src.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mirrored.SetGray(w-1-x, y, src.GrayAt(x, y))
		}
	}

	bitmap := binarize.NewBitmap(binarize.NewGraySource(mirrored))
	result, err := NewReader().Decode(bitmap, nil)
	require.NoError(t, err)
	assert.Equal(t, code, result.Text)
}

func TestDecodeBlankImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	bitmap := binarize.NewBitmap(binarize.NewGraySource(img))
	_, err := NewReader().Decode(bitmap, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeTryHarder(t *testing.T) {
	const code = "0012345678905"
	matrix, err := NewWriter().Encode(code, 0, 40)
	require.NoError(t, err)

	bitmap := binarize.NewBitmap(binarize.NewGraySource(matrixImage(matrix)))
	result, err := NewReader().Decode(bitmap, &ScanOptions{TryHarder: true})
	require.NoError(t, err)
	assert.Equal(t, code, result.Text)
}
