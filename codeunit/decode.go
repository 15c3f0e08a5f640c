package codeunit

import "unicode/utf16"

// Decode converts the code units of s into scalar values.
//
// A high surrogate immediately followed by a low surrogate is combined into
// one scalar in [0x10000, 0x10FFFF]. Any other surrogate is isolated and
// emitted unchanged. Decode never fails.
func Decode(s String) []rune {
	if len(s.units) == 0 {
		return nil
	}
	scalars := make([]rune, 0, len(s.units))
	for i := 0; i < len(s.units); {
		r, w := decodeAt(s.units, i)
		scalars = append(scalars, r)
		i += w
	}
	return scalars
}

// DecodeAt decodes the scalar starting at code-unit index i and returns it
// together with its width in code units (1 or 2).
//
// If i addresses a low surrogate, DecodeAt returns that surrogate as an
// isolated scalar, regardless of the unit preceding it.
// If i is out of range, width is 0.
func DecodeAt(s String, i int) (r rune, width int) {
	if i < 0 || i >= len(s.units) {
		return 0, 0
	}
	return decodeAt(s.units, i)
}

func decodeAt(units []Unit, i int) (rune, int) {
	u := units[i]
	if IsHigh(u) && i+1 < len(units) && IsLow(units[i+1]) {
		return utf16.DecodeRune(rune(u), rune(units[i+1])), 2
	}
	return rune(u), 1
}

// decodeLastAt decodes the scalar ending right before code-unit index end.
func decodeLastAt(units []Unit, end int) (rune, int) {
	u := units[end-1]
	if IsLow(u) && end >= 2 && IsHigh(units[end-2]) {
		return utf16.DecodeRune(rune(units[end-2]), rune(u)), 2
	}
	return rune(u), 1
}

// Encode converts scalars into a string of code units. It is the inverse of
// Decode: scalars from 0x10000 upwards become surrogate pairs, surrogate
// scalars become a single (isolated) code unit.
//
// Values outside [0, 0x10FFFF] are replaced by U+FFFD.
func Encode(scalars []rune) String {
	if len(scalars) == 0 {
		return String{}
	}
	units := make([]Unit, 0, len(scalars))
	for _, r := range scalars {
		units = AppendScalar(units, r)
	}
	return String{units: units}
}

// AppendScalar appends the code units of scalar r to dst and returns the
// extended slice.
func AppendScalar(dst []Unit, r rune) []Unit {
	switch {
	case r < 0 || r > MaxScalar:
		return append(dst, 0xFFFD)
	case r < surrSelf:
		return append(dst, Unit(r))
	}
	hi, lo := utf16.EncodeRune(r)
	return append(dst, Unit(hi), Unit(lo))
}

// ScalarCount returns the number of scalars Decode would produce for s.
func ScalarCount(s String) int {
	n := 0
	for i := 0; i < len(s.units); {
		_, w := decodeAt(s.units, i)
		i += w
		n++
	}
	return n
}
