// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

import (
	"math"

	"github.com/nodramaplease/float-number-dissecting/internal/bitutil"
)

// Decoded holds the real-valued components of Fields.
type Decoded struct {
	// Sign is +1 or -1.
	Sign float32
	// Exponent is Radix^(exponent-Bias), always positive.
	Exponent float32
	// Mantissa is the fraction with the implicit leading 1, [1, 2).
	Mantissa float32
}

// Decode turns fields into real-valued components.
// The normal-number convention is applied to every input, see package docs.
func Decode(f Fields) Decoded {
	return Decoded{
		Sign:     decodeSign(f.Sign),
		Exponent: decodeExponent(f.Exponent),
		Mantissa: decodeMantissa(f.Fraction),
	}
}

func decodeSign(sign uint8) float32 {
	return float32(math.Pow(-1, float64(sign&signMask)))
}

func decodeExponent(exponent uint8) float32 {
	// the stored exponent may be smaller than the bias.
	e := int(exponent) - Bias
	return float32(math.Pow(Radix, float64(e)))
}

func decodeMantissa(fraction uint32) float32 {
	mantissa := float32(1)
	for i := 0; i < FractionBits; i++ {
		if fraction&(1<<i) != 0 {
			mantissa += float32(bitutil.Pow2(i - FractionBits))
		}
	}
	return mantissa
}

// Combine multiplies the components into a number.
func Combine(sign, exponent, mantissa float32) float32 {
	return sign * mantissa * exponent
}

// Value returns the number represented by d.
func (d Decoded) Value() float32 {
	return Combine(d.Sign, d.Exponent, d.Mantissa)
}

// Reconstruct rebuilds v from its fields.
// The result equals v for all normal numbers.
func Reconstruct(v float32) float32 {
	return Decode(FromFloat32(v)).Value()
}
