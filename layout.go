// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

// binary32 layout:
//   31 30    23 22                   0
//   _|_______|_______________________|
//   seeeeeeeefffffffffffffffffffffff
const (
	// SignBits is the width of the sign field.
	SignBits = 1
	// ExponentBits is the width of the biased exponent field.
	ExponentBits = 8
	// FractionBits is the width of the stored mantissa bits.
	FractionBits = 23

	// Bias is subtracted from the stored exponent to get the true exponent.
	Bias = 1<<(ExponentBits-1) - 1
	// Radix of the representation.
	Radix = 2

	signShift = ExponentBits + FractionBits
	expShift  = FractionBits

	signMask = 1<<SignBits - 1
	expMask  = 1<<ExponentBits - 1
	fracMask = 1<<FractionBits - 1

	maxExponent = expMask
)
