package textprim

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode"

	"github.com/npillmayer/textprim/codeunit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Concat returns the concatenation of t and others.
func (t Text) Concat(others ...Text) Text {
	if len(others) == 0 {
		return t
	}
	strs := make([]codeunit.String, len(others))
	for i, o := range others {
		strs[i] = o.str
	}
	return Text{str: t.str.Concat(strs...)}
}

// Join concatenates texts, placing sep between consecutive texts.
func Join(texts []Text, sep Text) Text {
	strs := make([]codeunit.String, len(texts))
	for i, x := range texts {
		strs[i] = x.str
	}
	return Text{str: codeunit.Join(strs, sep.str)}
}

// Equal reports whether t and other consist of the same code units.
func (t Text) Equal(other Text) bool {
	return t.str.Equal(other.str)
}

// Compare compares texts by code unit value and returns -1, 0 or +1.
// It may be used as an ascending comparator for sorting.
func Compare(a, b Text) int {
	return a.str.Compare(b.str)
}

// CompareDesc is the descending counterpart of Compare.
func CompareDesc(a, b Text) int {
	return b.str.Compare(a.str)
}

// Split cuts t at every occurrence of sep and returns the pieces between.
// Empty pieces are kept. If sep is empty, t is split into graphemes.
// Splitting the empty text at a non-empty separator yields a single empty
// piece.
func (t Text) Split(sep Text) []Text {
	if sep.IsVoid() {
		return t.Graphemes()
	}
	var pieces []Text
	start := 0
	for {
		at := t.str.IndexScalar(sep.str, start)
		if at < 0 {
			break
		}
		pieces = append(pieces, Text{str: t.str.Slice(start, at)})
		start = at + sep.str.Len()
	}
	return append(pieces, Text{str: t.str.Slice(start, t.str.Len())})
}

// Replace replaces every occurrence of old in t by repl.
// Occurrences are found left to right and do not overlap. If old is empty,
// repl is inserted between every two graphemes of t.
func (t Text) Replace(old, repl Text) Text {
	return Join(t.Split(old), repl)
}

// Trim removes leading and trailing white space, as defined by the Unicode
// White_Space property.
func (t Text) Trim() Text {
	units := t.str.Len()
	from, to := 0, units
	for from < to && isWhiteSpace(t.str, from) {
		from++
	}
	for to > from && isWhiteSpace(t.str, to-1) {
		to--
	}
	if from == 0 && to == units {
		return t
	}
	return Text{str: t.str.Slice(from, to)}
}

// All White_Space characters are in the BMP.
func isWhiteSpace(s codeunit.String, i int) bool {
	u, _ := s.At(i)
	return !codeunit.IsHigh(u) && !codeunit.IsLow(u) && unicode.Is(unicode.White_Space, rune(u))
}

// Upper maps t to upper case, independent of any locale.
func (t Text) Upper() Text {
	return t.mapRuns(cases.Upper(language.Und).String)
}

// Lower maps t to lower case, independent of any locale.
func (t Text) Lower() Text {
	return t.mapRuns(cases.Lower(language.Und).String)
}

// Normalize converts t to Unicode normalization form f.
func (t Text) Normalize(f norm.Form) Text {
	return t.mapRuns(f.String)
}

// mapRuns applies f to every maximal run of t free of isolated surrogates.
// Isolated surrogates are copied unchanged.
func (t Text) mapRuns(f func(string) string) Text {
	if t.IsVoid() {
		return t
	}
	scalars := codeunit.Decode(t.str)
	out := make([]codeunit.Unit, 0, t.str.Len())
	runStart := 0
	flush := func(end int) {
		if end > runStart {
			for _, r := range f(string(scalars[runStart:end])) {
				out = codeunit.AppendScalar(out, r)
			}
		}
	}
	for i, r := range scalars {
		if codeunit.IsSurrogate(r) {
			flush(i)
			out = append(out, codeunit.Unit(r))
			runStart = i + 1
		}
	}
	flush(len(scalars))
	return Text{str: codeunit.FromUnits(out)}
}
