package textprim

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
	"strconv"
	"strings"
)

// ToNum interprets t as a decimal number. Surrounding white space is
// ignored. Hexadecimal notation, NaN and infinities are not accepted;
// for these and for non-numeric texts ok is false.
func (t Text) ToNum() (x float64, ok bool) {
	s := t.Trim()
	if s.IsVoid() || !s.str.IsWellFormed() {
		return 0, false
	}
	str := s.String()
	for _, c := range str {
		if !strings.ContainsRune("0123456789+-.eE", c) {
			return 0, false
		}
	}
	x, err := strconv.ParseFloat(str, 64)
	if err != nil {
		T().Debugf("text %q is not a number: %v", str, err)
		return 0, false
	}
	return x, true
}

// FormatNumber returns the shortest decimal text that parses back to x.
// Integral values are printed without a fraction; very large and very small
// magnitudes use exponent notation ("1e+21", "1e-7").
func FormatNumber(x float64) Text {
	return FromString(formatNumber(x))
}

func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	// exponents without leading zeros
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp := s[:i+2], strings.TrimLeft(s[i+2:], "0")
		s = mant + exp
	}
	return s
}

// ToHex formats the integral part of x in lower case hexadecimal.
func ToHex(x float64) Text {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return FromString(formatNumber(x))
	}
	x = math.Trunc(x)
	if math.Abs(x) < 1<<63 {
		return FromString(strconv.FormatInt(int64(x), 16))
	}
	T().Debugf("hex formatting of %g loses precision", x)
	return FromString(strconv.FormatFloat(x, 'x', -1, 64))
}

// ParseHex reads a hexadecimal number from the start of t. Leading white
// space, a sign and a "0x" prefix are accepted; parsing stops at the first
// non-hex character. If no digit is found, ok is false.
func ParseHex(t Text) (x float64, ok bool) {
	s := t.Trim().String()
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	digits := 0
scan:
	for _, c := range s {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			break scan
		}
		x = x*16 + float64(d)
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		x = -x
	}
	return x, true
}
