package bitutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(0), Mask[uint32](0))
	a.Equal(uint32(1), Mask[uint32](1))
	a.Equal(uint32(0xFF), Mask[uint32](8))
	a.Equal(uint32(0x7FFFFF), Mask[uint32](23))
	a.Equal(uint32(math.MaxUint32), Mask[uint32](32))
	a.Equal(uint64(math.MaxUint64), Mask[uint64](64))
	a.Equal(uint8(0x0F), Mask[uint8](4))
}

func TestField(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v            uint32
		shift, width int
		res          uint32
	}{
		{0x3F800000, 31, 1, 0},
		{0x3F800000, 23, 8, 127},
		{0x3F800000, 0, 23, 0},
		{0xC0000000, 31, 1, 1},
		{0xC0000000, 23, 8, 128},
		{0x3FC00000, 0, 23, 0x400000},
		{0xFFFFFFFF, 0, 23, 0x7FFFFF},
		{0xFFFFFFFF, 23, 8, 0xFF},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Field(test.v, test.shift, test.width))
		})
	}
}

func TestBinary(t *testing.T) {
	a := assert.New(t)
	a.Equal("0", Binary(uint8(0), 1))
	a.Equal("1", Binary(uint8(1), 1))
	a.Equal("00000101", Binary(uint8(5), 8))
	a.Equal("01111111", Binary(uint32(127), 8))
	a.Equal("10000000000000000000000", Binary(uint32(0x400000), 23))
	a.Equal("11111111111111111111111", Binary(uint32(0x7FFFFF), 23))
	a.Equal("1111", Binary(uint32(0xFF), 4))
}

func TestPow2(t *testing.T) {
	a := assert.New(t)
	a.Equal(1.0, Pow2(0))
	a.Equal(0.5, Pow2(-1))
	a.Equal(1.1920928955078125e-07, Pow2(-23))
	a.Equal(float64(1<<20), Pow2(20))
	a.Equal(math.SmallestNonzeroFloat32, Pow2(-149))
}
