// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dissect splits IEEE-754 binary32 numbers into their sign, exponent
// and fraction fields, and rebuilds a value from those fields using the
// textbook formula
//
//	n = (-1)^sign * mantissa * 2^(exponent-127)
//
// The formula assumes a normal number. Zeros and subnormals are rebuilt with
// an implicit leading 1 and a 2^-127 scale, infinities and NaNs overflow to ±Inf.
package dissect

import (
	"fmt"
	"math"
	"strings"

	"github.com/nodramaplease/float-number-dissecting/internal/bitutil"
)

// Kind is the IEEE-754 class of a bit pattern.
type Kind uint8

const (
	// KindNormal is a finite number with an implicit leading 1.
	KindNormal Kind = iota
	// KindZero is a positive or a negative zero.
	KindZero
	// KindSubnormal is a finite number with the exponent field set to zero.
	KindSubnormal
	// KindInfinite is a positive or a negative infinity.
	KindInfinite
	// KindNaN is a not-a-number.
	KindNaN
)

var kindNames = [...]string{
	KindNormal:    "normal",
	KindZero:      "zero",
	KindSubnormal: "subnormal",
	KindInfinite:  "infinite",
	KindNaN:       "nan",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Fields is a binary32 number split into its three fields.
type Fields struct {
	// Sign is 0 for positive and 1 for negative numbers.
	Sign uint8
	// Exponent is the biased exponent as stored, [0, 255].
	Exponent uint8
	// Fraction holds the 23 stored mantissa bits, [0, 8388607].
	Fraction uint32
}

// Extract splits a bit pattern into fields.
// Every pattern is valid, all 32 bits end up in exactly one field.
func Extract(bits uint32) Fields {
	return Fields{
		Sign:     uint8(bitutil.Field(bits, signShift, SignBits)),
		Exponent: uint8(bitutil.Field(bits, expShift, ExponentBits)),
		Fraction: bitutil.Field(bits, 0, FractionBits),
	}
}

// FromFloat32 returns the fields of v.
func FromFloat32(v float32) Fields {
	return Extract(math.Float32bits(v))
}

// Bits packs the fields back into a bit pattern.
// Field values wider than their field are truncated.
func (f Fields) Bits() uint32 {
	return uint32(f.Sign&signMask)<<signShift | uint32(f.Exponent)<<expShift | f.Fraction&fracMask
}

// Float32 returns the number the hardware reads from the fields.
func (f Fields) Float32() float32 {
	return math.Float32frombits(f.Bits())
}

// Kind returns the IEEE-754 class of the fields.
func (f Fields) Kind() Kind {
	frac := f.Fraction & fracMask
	switch f.Exponent {
	case 0:
		if frac == 0 {
			return KindZero
		}
		return KindSubnormal
	case maxExponent:
		if frac == 0 {
			return KindInfinite
		}
		return KindNaN
	default:
		return KindNormal
	}
}

// IsNormal returns true, if the reconstruction formula is exact for f.
func (f Fields) IsNormal() bool {
	return f.Kind() == KindNormal
}

// String returns fields as binary strings separated by spaces.
func (f Fields) String() string {
	var builder strings.Builder
	builder.WriteString(bitutil.Binary(f.Sign, SignBits))
	builder.WriteRune(' ')
	builder.WriteString(bitutil.Binary(f.Exponent, ExponentBits))
	builder.WriteRune(' ')
	builder.WriteString(bitutil.Binary(f.Fraction, FractionBits))
	return builder.String()
}

// GoString returns debug string representation.
func (f Fields) GoString() string {
	return fmt.Sprintf("{sign: %d, exponent: %d, fraction: %d}", f.Sign, f.Exponent, f.Fraction)
}
