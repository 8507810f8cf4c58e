// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

import (
	"fmt"
	"os"
)

func ExampleReport() {
	v, err := ParseFloat32("-2.0")
	if err != nil {
		panic(err)
	}
	if _, err := NewReport(v).WriteTo(os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// -2 -> -2
	// field     |   as bits                  |   as real number
	// sign      | 1                          | -1
	// exponent  | 10000000                   | 2
	// mantissa  | 00000000000000000000000    | 1
}

func ExampleDecode() {
	f := FromFloat32(1.5)
	d := Decode(f)
	fmt.Printf("fields: %s, %#v\n", f, f)
	fmt.Printf("sign = %v, exponent = %v, mantissa = %v\n", d.Sign, d.Exponent, d.Mantissa)
	fmt.Printf("%v -> %v\n", f.Float32(), d.Value())

	zero := FromFloat32(0)
	fmt.Printf("%v is %s, rebuilt as %v\n", zero.Float32(), zero.Kind(), Decode(zero).Value())

	// Output:
	// fields: 0 01111111 10000000000000000000000, {sign: 0, exponent: 127, fraction: 4194304}
	// sign = 1, exponent = 1, mantissa = 1.5
	// 1.5 -> 1.5
	// 0 is zero, rebuilt as 5.877472e-39
}

func ExampleDeviation() {
	for _, v := range []float32{0.1, 0} {
		f := FromFloat32(v)
		exact := DecodeExact(f)
		dev, _ := Deviation(f)
		fmt.Printf("%v: exact %s, deviation %s\n", v, exact.Value, dev.Shift(39).StringFixed(6))
	}

	// Output:
	// 0.1: exact 0.100000001490116119384765625, deviation 0.000000
	// 0: exact 0.0000000000000000000000000000000000000058774717541114375398436826861112283890933277838604376075437585313920862972736358642578125, deviation 5.877472
}
