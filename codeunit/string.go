package codeunit

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
	"unicode/utf16"
)

// Unit is one 16-bit storage unit of a string.
type Unit = uint16

// Surrogate ranges and scalar limits.
const (
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
	MaxScalar        = 0x10FFFF
	surrSelf         = 0x10000
)

// UnitError is an error type for the codeunit package.
type UnitError string

func (e UnitError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is outside of a string.
const ErrIndexOutOfBounds = UnitError("codeunit: index out of bounds")

// IsHigh reports whether u is a leading (high) surrogate.
func IsHigh(u Unit) bool {
	return u >= HighSurrogateMin && u <= HighSurrogateMax
}

// IsLow reports whether u is a trailing (low) surrogate.
func IsLow(u Unit) bool {
	return u >= LowSurrogateMin && u <= LowSurrogateMax
}

// IsSurrogate reports whether scalar r lies in the surrogate range.
// Such a scalar can only originate from an isolated surrogate.
func IsSurrogate(r rune) bool {
	return r >= HighSurrogateMin && r <= LowSurrogateMax
}

// String is an immutable sequence of UTF-16 code units.
//
// A string created by
//
//	String{}
//
// is valid and behaves like the empty string. Strings may hold isolated
// surrogates; all operations of this package carry them through verbatim.
// Strings never expose their backing array, so they may be shared freely
// between goroutines.
type String struct {
	units []Unit
}

// FromString creates a string from a Go string.
//
// Invalid UTF-8 in s is replaced by U+FFFD, one per offending byte, the way
// ranging over a Go string does.
func FromString(s string) String {
	if s == "" {
		return String{}
	}
	units := make([]Unit, 0, len(s))
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return String{units: units}
}

// FromUnits creates a string from a private copy of units.
func FromUnits(units []Unit) String {
	if len(units) == 0 {
		return String{}
	}
	return String{units: slices.Clone(units)}
}

// Len returns the number of code units.
func (s String) Len() int {
	return len(s.units)
}

// IsEmpty reports whether s has no code units.
func (s String) IsEmpty() bool {
	return len(s.units) == 0
}

// At returns the code unit at index i. If i is out of range, ok is false.
func (s String) At(i int) (u Unit, ok bool) {
	if i < 0 || i >= len(s.units) {
		return 0, false
	}
	return s.units[i], true
}

// Units returns a copy of the code units of s.
func (s String) Units() []Unit {
	return slices.Clone(s.units)
}

// Slice returns the code units [i, j) as a new string.
// Slice panics if the range is invalid, like slicing a Go slice does.
func (s String) Slice(i, j int) String {
	if i == j {
		return String{}
	}
	return String{units: s.units[i:j:j]}
}

// String returns s as a Go string. Isolated surrogates cannot be represented
// in UTF-8 and are replaced by U+FFFD.
func (s String) String() string {
	if len(s.units) == 0 {
		return ""
	}
	return string(utf16.Decode(s.units))
}

// IsWellFormed reports whether s contains no isolated surrogates.
func (s String) IsWellFormed() bool {
	for i := 0; i < len(s.units); i++ {
		u := s.units[i]
		switch {
		case IsHigh(u):
			if i+1 >= len(s.units) || !IsLow(s.units[i+1]) {
				return false
			}
			i++
		case IsLow(u):
			return false
		}
	}
	return true
}

// Equal reports whether s and t consist of the same code units.
func (s String) Equal(t String) bool {
	return slices.Equal(s.units, t.units)
}

// Compare compares s and t lexicographically by code unit value.
// The result is -1, 0 or +1.
func (s String) Compare(t String) int {
	return slices.Compare(s.units, t.units)
}

// Index returns the code-unit index of the first occurrence of sub in s,
// or -1 if sub is not present. An empty sub is found at index 0.
func (s String) Index(sub String) int {
	return indexFrom(s.units, sub.units, 0)
}

// IndexFrom is like Index, but starts searching at code-unit index from.
func (s String) IndexFrom(sub String, from int) int {
	if from < 0 {
		from = 0
	}
	return indexFrom(s.units, sub.units, from)
}

func indexFrom(hay, needle []Unit, from int) int {
	n := len(needle)
	if n == 0 {
		if from <= len(hay) {
			return from
		}
		return -1
	}
	for i := from; i+n <= len(hay); i++ {
		if hay[i] == needle[0] && slices.Equal(hay[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// Concat returns the concatenation of s and others.
func (s String) Concat(others ...String) String {
	n := len(s.units)
	for _, o := range others {
		n += len(o.units)
	}
	if n == 0 {
		return String{}
	}
	units := make([]Unit, 0, n)
	units = append(units, s.units...)
	for _, o := range others {
		units = append(units, o.units...)
	}
	return String{units: units}
}

// Join concatenates parts, placing sep between consecutive parts.
func Join(parts []String, sep String) String {
	if len(parts) == 0 {
		return String{}
	}
	n := len(sep.units) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p.units)
	}
	units := make([]Unit, 0, n)
	for i, p := range parts {
		if i > 0 {
			units = append(units, sep.units...)
		}
		units = append(units, p.units...)
	}
	return String{units: units}
}

// IsBoundary reports whether code-unit offset i lies between two scalars,
// i.e. does not fall between the halves of a surrogate pair.
// Offsets 0 and Len() are boundaries; offsets outside of s are not.
func (s String) IsBoundary(i int) bool {
	if i < 0 || i > len(s.units) {
		return false
	}
	if i == 0 || i == len(s.units) {
		return true
	}
	return !(IsHigh(s.units[i-1]) && IsLow(s.units[i]))
}

// IndexScalar returns the code-unit index of the first occurrence of sub in s
// at or after from, where the match neither starts nor ends inside a
// surrogate pair of s. It returns -1 if there is no such occurrence.
func (s String) IndexScalar(sub String, from int) int {
	for {
		i := s.IndexFrom(sub, from)
		if i < 0 {
			return -1
		}
		if s.IsBoundary(i) && s.IsBoundary(i+len(sub.units)) {
			return i
		}
		from = i + 1
	}
}
