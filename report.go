// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nodramaplease/float-number-dissecting/internal/bitutil"
)

const (
	nameWidth = 10
	bitsWidth = 1 + FractionBits + 3
	rowFormat = "%-*s| %-*s| %s\n"
)

// Report is the result of dissecting a single number.
type Report struct {
	Input         float32
	Fields        Fields
	Decoded       Decoded
	Reconstructed float32
}

// NewReport dissects v and rebuilds it from its fields.
func NewReport(v float32) Report {
	fields := FromFloat32(v)
	decoded := Decode(fields)
	return Report{
		Input:         v,
		Fields:        fields,
		Decoded:       decoded,
		Reconstructed: decoded.Value(),
	}
}

type reportRow struct {
	name, bits string
	value      float32
}

func (r Report) rows() []reportRow {
	return []reportRow{
		{"sign", bitutil.Binary(r.Fields.Sign, SignBits), r.Decoded.Sign},
		{"exponent", bitutil.Binary(r.Fields.Exponent, ExponentBits), r.Decoded.Exponent},
		{"mantissa", bitutil.Binary(r.Fields.Fraction, FractionBits), r.Decoded.Mantissa},
	}
}

// WriteTo writes the input and the reconstructed values,
// followed by a table with each field as bits and as a real number.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var builder strings.Builder
	builder.WriteString(FormatReal(r.Input))
	builder.WriteString(" -> ")
	builder.WriteString(FormatReal(r.Reconstructed))
	builder.WriteRune('\n')
	fmt.Fprintf(&builder, rowFormat, nameWidth, "field", bitsWidth, "  as bits", "  as real number")
	for _, row := range r.rows() {
		fmt.Fprintf(&builder, rowFormat, nameWidth, row.name, bitsWidth, row.bits, FormatReal(row.value))
	}
	n, err := io.WriteString(w, builder.String())
	return int64(n), err
}

// String returns the same text as WriteTo.
func (r Report) String() string {
	var builder strings.Builder
	r.WriteTo(&builder)
	return builder.String()
}

type jsonField struct {
	Bits  string `json:"bits"`
	Value string `json:"value"`
}

// MarshalJSON marshals the report as an object.
// Real numbers are written as strings, like `"1.5"`, so that infinities and NaNs survive.
func (r Report) MarshalJSON() ([]byte, error) {
	rows := r.rows()
	d := struct {
		Input         string    `json:"input"`
		Reconstructed string    `json:"reconstructed"`
		Kind          string    `json:"kind"`
		Sign          jsonField `json:"sign"`
		Exponent      jsonField `json:"exponent"`
		Mantissa      jsonField `json:"mantissa"`
	}{
		Input:         FormatReal(r.Input),
		Reconstructed: FormatReal(r.Reconstructed),
		Kind:          r.Fields.Kind().String(),
		Sign:          jsonField{rows[0].bits, FormatReal(rows[0].value)},
		Exponent:      jsonField{rows[1].bits, FormatReal(rows[1].value)},
		Mantissa:      jsonField{rows[2].bits, FormatReal(rows[2].value)},
	}
	return json.Marshal(d)
}

// FormatReal returns the shortest decimal representation of v, which parses back to v.
// Exponent notation is never used.
func FormatReal(v float32) string {
	switch {
	case math.IsNaN(float64(v)):
		return "NaN"
	case math.IsInf(float64(v), 1):
		return "inf"
	case math.IsInf(float64(v), -1):
		return "-inf"
	default:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
}
