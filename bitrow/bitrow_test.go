package bitrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowGetSet(t *testing.T) {
	r := NewRow(33)
	for i := 0; i < 33; i++ {
		assert.False(t, r.Get(i), "module %d should start light", i)
	}
	r.Set(0)
	r.Set(31)
	r.Set(32)
	assert.True(t, r.Get(0))
	assert.True(t, r.Get(31))
	assert.True(t, r.Get(32))
	assert.False(t, r.Get(1))
	assert.False(t, r.Get(30))
}

func TestRowNextSet(t *testing.T) {
	r := NewRow(64)
	r.Set(10)
	r.Set(40)
	assert.Equal(t, 10, r.NextSet(0))
	assert.Equal(t, 10, r.NextSet(10))
	assert.Equal(t, 40, r.NextSet(11))
	assert.Equal(t, 64, r.NextSet(41))
	assert.Equal(t, 64, r.NextSet(100))
}

func TestRowNextUnset(t *testing.T) {
	r := NewRow(40)
	r.SetRange(0, 40)
	assert.Equal(t, 40, r.NextUnset(0))

	r2 := NewRow(40)
	r2.SetRange(0, 35)
	assert.Equal(t, 35, r2.NextUnset(0))
	assert.Equal(t, 36, r2.NextUnset(36))
}

func TestRowIsRange(t *testing.T) {
	r := NewRow(16)
	r.SetRange(4, 12)
	assert.True(t, r.IsRange(4, 12, true))
	assert.True(t, r.IsRange(0, 4, false))
	assert.False(t, r.IsRange(0, 8, true))
	assert.True(t, r.IsRange(7, 7, true), "empty range matches anything")
}

func TestRowReverse(t *testing.T) {
	r := NewRow(8)
	r.Set(0)
	r.Set(2)
	r.Reverse()
	assert.True(t, r.Get(5))
	assert.True(t, r.Get(7))
	assert.False(t, r.Get(0))
	assert.False(t, r.Get(2))
}

func TestRowReverseOddWidth(t *testing.T) {
	// Width that is not a multiple of the word size.
	r := NewRow(95)
	r.Set(0)
	r.Set(50)
	r.Set(94)
	r.Reverse()
	assert.True(t, r.Get(94))
	assert.True(t, r.Get(44))
	assert.True(t, r.Get(0))
	count := 0
	for i := 0; i < r.Size(); i++ {
		if r.Get(i) {
			count++
		}
	}
	assert.Equal(t, 3, count, "reverse must preserve the number of dark modules")
}

func TestRowReverseTwiceIsIdentity(t *testing.T) {
	r := NewRow(77)
	r.Set(3)
	r.SetRange(20, 31)
	r.Set(76)
	want := r.Clone()
	r.Reverse()
	r.Reverse()
	for i := 0; i < r.Size(); i++ {
		require.Equal(t, want.Get(i), r.Get(i), "module %d", i)
	}
}

func TestRowClone(t *testing.T) {
	r := NewRow(16)
	r.Set(5)
	c := r.Clone()
	c.Set(10)
	assert.False(t, r.Get(10), "mutating the clone must not touch the original")
	assert.True(t, c.Get(5))
	assert.True(t, c.Get(10))
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(10, 3)
	assert.Equal(t, 10, m.Width())
	assert.Equal(t, 3, m.Height())
	m.Set(4, 1)
	assert.True(t, m.Get(4, 1))
	assert.False(t, m.Get(4, 0))

	m.SetColumnRange(7, 2)
	for y := 0; y < 3; y++ {
		assert.True(t, m.Get(7, y))
		assert.True(t, m.Get(8, y))
		assert.False(t, m.Get(9, y))
	}
}
