// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// minNormalExponent is the true exponent of subnormal numbers.
	minNormalExponent = 1 - Bias
)

var (
	one      = decimal.New(1, 0)
	minusOne = decimal.New(-1, 0)
	five     = big.NewInt(5)
)

// Exact holds the components of Fields and their product as exact decimal numbers.
type Exact struct {
	Sign     decimal.Decimal
	Exponent decimal.Decimal
	Mantissa decimal.Decimal
	Value    decimal.Decimal
}

// DecodeExact does the same as Decode, but without rounding.
// Every power of two has a finite decimal expansion, so the result is exact.
func DecodeExact(f Fields) Exact {
	sign := one
	if f.Sign&signMask != 0 {
		sign = minusOne
	}
	exponent := pow2(int(f.Exponent) - Bias)
	mantissa := significand(f.Fraction, true)
	return Exact{
		Sign:     sign,
		Exponent: exponent,
		Mantissa: mantissa,
		Value:    sign.Mul(mantissa).Mul(exponent),
	}
}

// TrueValue returns the exact IEEE-754 value of f.
// Subnormals use an implicit leading 0 and the minimum normal exponent.
// Returns false for infinities and NaNs.
func TrueValue(f Fields) (decimal.Decimal, bool) {
	var value decimal.Decimal
	switch f.Kind() {
	case KindInfinite, KindNaN:
		return decimal.Zero, false
	case KindZero:
		return decimal.Zero, true
	case KindSubnormal:
		value = significand(f.Fraction, false).Mul(pow2(minNormalExponent))
	default:
		value = significand(f.Fraction, true).Mul(pow2(int(f.Exponent) - Bias))
	}
	if f.Sign&signMask != 0 {
		value = value.Neg()
	}
	return value, true
}

// Deviation returns DecodeExact(f).Value - TrueValue(f).
// It is zero for normal numbers. Returns false for infinities and NaNs.
func Deviation(f Fields) (decimal.Decimal, bool) {
	v, ok := TrueValue(f)
	if !ok {
		return decimal.Zero, false
	}
	return DecodeExact(f).Value.Sub(v), true
}

// significand returns the fraction bits as a number in [0, 2),
// with the implicit bit set to 1 or 0.
func significand(fraction uint32, implicit bool) decimal.Decimal {
	m := int64(fraction & fracMask)
	if implicit {
		m |= 1 << FractionBits
	}
	return decimal.New(m, 0).Mul(pow2(-FractionBits))
}

// pow2 returns 2^e. Negative powers are computed as 5^k * 10^-k.
func pow2(e int) decimal.Decimal {
	if e >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(e)), 0)
	}
	k := int64(-e)
	return decimal.NewFromBigInt(new(big.Int).Exp(five, big.NewInt(k), nil), int32(e))
}
