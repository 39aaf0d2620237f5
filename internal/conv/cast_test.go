package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	t.Run("widening always fits", func(t *testing.T) {
		got, ok := Cast[uint64](uint8(200))
		assert.True(t, ok)
		assert.Equal(t, uint64(200), got)
	})

	t.Run("narrowing within range", func(t *testing.T) {
		got, ok := Cast[uint8](uint64(255))
		assert.True(t, ok)
		assert.Equal(t, uint8(255), got)
	})

	t.Run("narrowing out of range", func(t *testing.T) {
		_, ok := Cast[uint8](uint64(256))
		assert.False(t, ok)

		_, ok = Cast[uint16](uint32(math.MaxUint32))
		assert.False(t, ok)
	})

	t.Run("same width", func(t *testing.T) {
		got, ok := Cast[uint32](uint32(math.MaxUint32))
		assert.True(t, ok)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("zero", func(t *testing.T) {
		got, ok := Cast[uint8](uint64(0))
		assert.True(t, ok)
		assert.Equal(t, uint8(0), got)
	})

	t.Run("boundary sweep uint16 to uint8", func(t *testing.T) {
		for v := uint16(0); v < 512; v++ {
			got, ok := Cast[uint8](v)
			if v <= math.MaxUint8 {
				assert.True(t, ok)
				assert.Equal(t, uint8(v), got)
			} else {
				assert.False(t, ok)
			}
		}
	})
}
