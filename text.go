package textprim

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/textprim/cluster"
	"github.com/npillmayer/textprim/codeunit"
	"github.com/npillmayer/textprim/utf8codec"
)

// Text is an immutable script string.
//
// A text created by
//
//	Text{}
//
// is a valid object and behaves like the empty string.
//
// Texts store UTF-16 code units. Methods that take or return positions count
// graphemes unless documented otherwise.
//
//	Operation     |  cost
//	--------------+--------
//	LenIn(Units)  |  O(1)
//	CharCodeAt    |  O(1)
//	Len, Pick     |  O(n)
//	Concat        |  O(n)
type Text struct {
	str codeunit.String
}

// Granularity selects one of the views of a text.
type Granularity int8

// Views of a text, from coarse to fine.
const (
	Graphemes  Granularity = iota // extended grapheme clusters
	Codepoints                    // scalar values, isolated surrogates included
	CodeUnits                     // UTF-16 code units
)

func (g Granularity) String() string {
	switch g {
	case Graphemes:
		return "graphemes"
	case Codepoints:
		return "codepoints"
	case CodeUnits:
		return "code units"
	}
	return "<unknown granularity>"
}

// LF is a text consisting of a single line feed.
var LF = FromString("\n")

// FromString creates a text from a Go string. Invalid UTF-8 is replaced by
// U+FFFD. Use FromUTF8Bytes to reject invalid input instead.
func FromString(s string) Text {
	return Text{str: codeunit.FromString(s)}
}

// FromUnits creates a text from code units. units may contain isolated
// surrogates and is copied.
func FromUnits(units []uint16) Text {
	return Text{str: codeunit.FromUnits(units)}
}

// FromStr wraps a code-unit string.
func FromStr(s codeunit.String) Text {
	return Text{str: s}
}

// FromCodepoint creates a text holding a single codepoint. cp has to lie in
// [0, 0x10FFFF]; surrogate values produce an isolated surrogate.
func FromCodepoint(cp rune) (Text, error) {
	return FromCodepoints([]rune{cp})
}

// FromCodepoints creates a text from a sequence of codepoints. If any of them
// lies outside of [0, 0x10FFFF], ErrInvalidCodepoint is returned.
func FromCodepoints(cps []rune) (Text, error) {
	for i, cp := range cps {
		if cp < 0 || cp > codeunit.MaxScalar {
			T().Debugf("codepoint #%d out of range: %#x", i, cp)
			return Text{}, ErrInvalidCodepoint
		}
	}
	return Text{str: codeunit.Encode(cps)}, nil
}

// FromUTF8Bytes decodes UTF-8 bytes. Malformed input is rejected with an
// *utf8codec.EncodingError.
func FromUTF8Bytes(b []byte) (Text, error) {
	scalars, err := utf8codec.Decode(b)
	if err != nil {
		return Text{}, err
	}
	return Text{str: codeunit.Encode(scalars)}, nil
}

// Str returns the underlying code-unit string.
func (t Text) Str() codeunit.String {
	return t.str
}

// String returns t as a Go string, with isolated surrogates replaced by U+FFFD.
func (t Text) String() string {
	return t.str.String()
}

// IsVoid returns true if t is the empty text.
func (t Text) IsVoid() bool {
	return t.str.IsEmpty()
}

// Len returns the number of graphemes of t.
func (t Text) Len() int {
	return cluster.Count(t.str)
}

// LenIn returns the length of t in units of granularity g.
func (t Text) LenIn(g Granularity) int {
	switch g {
	case Graphemes:
		return cluster.Count(t.str)
	case Codepoints:
		return codeunit.ScalarCount(t.str)
	case CodeUnits:
		return t.str.Len()
	}
	panic("textprim: unknown granularity " + g.String())
}

// Graphemes returns the grapheme clusters of t as texts.
func (t Text) Graphemes() []Text {
	parts := cluster.Split(t.str)
	texts := make([]Text, len(parts))
	for i, p := range parts {
		texts[i] = Text{str: p}
	}
	return texts
}

// Codepoints returns one text per codepoint of t. A surrogate pair yields a
// text of two code units, an isolated surrogate one of a single unit.
func (t Text) Codepoints() []Text {
	texts := make([]Text, 0, t.str.Len())
	c := t.str.NewCursor()
	start := 0
	for {
		if _, ok := c.Next(); !ok {
			break
		}
		texts = append(texts, Text{str: t.str.Slice(start, c.Offset())})
		start = c.Offset()
	}
	return texts
}

// CodepointValues returns the codepoints of t as numbers.
func (t Text) CodepointValues() []rune {
	return codeunit.Decode(t.str)
}

// CodeUnits returns one text per code unit of t.
func (t Text) CodeUnits() []Text {
	texts := make([]Text, t.str.Len())
	for i := range texts {
		texts[i] = Text{str: t.str.Slice(i, i+1)}
	}
	return texts
}

// CodeUnitValues returns the code units of t as numbers.
func (t Text) CodeUnitValues() []uint16 {
	return t.str.Units()
}

// UTF8Bytes returns the UTF-8 encoding of t. Texts holding isolated
// surrogates cannot be encoded and produce an *utf8codec.EncodingError.
func (t Text) UTF8Bytes() ([]byte, error) {
	return utf8codec.Encode(codeunit.Decode(t.str))
}

// RangeGraphemes iterates over the graphemes of t, yielding the grapheme
// index and the grapheme.
func (t Text) RangeGraphemes() iter.Seq2[int, Text] {
	return func(yield func(int, Text) bool) {
		for i, p := range cluster.Split(t.str) {
			if !yield(i, Text{str: p}) {
				return
			}
		}
	}
}
