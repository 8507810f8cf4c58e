// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dissect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by the package.
var Error = errs.Class("dissect")

const (
	delim = '.'
)

var (
	specialValues = map[string]bool{
		"inf":      true,
		"infinity": true,
		"nan":      true,
	}
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) {
		return err
	}
	pe.pos += offset
	return pe
}

// ParseFloat32 parses a decimal floating-point literal, like "3.14", "-0.5" or "1e-3".
// "inf", "infinity" and "nan" are accepted in any case.
// Values too large for a float32 become ±Inf, values too small become ±0.
func ParseFloat32(s string) (float32, error) {
	if len(strings.TrimSpace(s)) == 0 {
		return 0, Error.New("empty input")
	}
	prepared, offset := prepareString(s)
	if err := scan(prepared); err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return 0, Error.Wrap(addPosErrorOffset(err, offset+1))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return 0, Error.Wrap(err)
		}
	}
	return float32(f), nil
}

// prepareString trims spaces and the sign.
// returns the remaining string and the number of trimmed leading bytes.
func prepareString(s string) (prepared string, offset int) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		offset++
		s = s[1:]
	}
	return s, offset
}

// scan checks that s is an unsigned decimal literal.
// positions in returned errors are 0-based.
func scan(s string) error {
	if specialValues[strings.ToLower(s)] {
		return nil
	}
	digits, delimPos, expPos := 0, -1, -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim && expPos == -1:
			if delimPos >= 0 {
				return newPosError("unexpected delimiter", i)
			}
			delimPos = i
		case (r == 'e' || r == 'E') && expPos == -1:
			if digits == 0 {
				return newPosError("missing digits before exponent", i)
			}
			expPos, digits = i, 0
		case (r == '-' || r == '+') && expPos >= 0 && i == expPos+1:
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return newPosError("missing digits", len(s))
	}
	return nil
}
