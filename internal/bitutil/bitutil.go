package bitutil

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Mask returns a value with the lowest 'width' bits set.
func Mask[T constraints.Unsigned](width int) T {
	return T(1)<<width - 1
}

// Field returns 'width' bits of v starting at bit 'shift'.
func Field[T constraints.Unsigned](v T, shift, width int) T {
	return v >> shift & Mask[T](width)
}

// Binary formats the lowest 'width' bits of v as a binary string,
// padded with leading zeros.
func Binary[T constraints.Unsigned](v T, width int) string {
	s := strconv.FormatUint(uint64(v&Mask[T](width)), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Pow2 returns 2^e.
func Pow2(e int) float64 {
	return math.Ldexp(1, e)
}
