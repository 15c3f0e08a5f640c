package textprim

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"github.com/npillmayer/textprim/cluster"
	"github.com/npillmayer/textprim/codeunit"
)

// Pick returns the grapheme at grapheme index i. If i is outside of
// [0, t.Len()), ok is false.
func (t Text) Pick(i int) (g Text, ok bool) {
	if i < 0 || t.IsVoid() {
		return Text{}, false
	}
	offsets := cluster.UnitOffsets(t.str)
	if i >= len(offsets) {
		return Text{}, false
	}
	end := t.str.Len()
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	return Text{str: t.str.Slice(offsets[i], end)}, true
}

// CharCodeAt returns the code unit at code-unit index i. If i is out of
// range, ok is false.
func (t Text) CharCodeAt(i int) (u uint16, ok bool) {
	return t.str.At(i)
}

// CodepointAt returns the codepoint starting at code-unit index i.
// If a high surrogate at i is followed by a low surrogate, the combined
// scalar is returned. Any other surrogate, including the low half of a pair,
// is returned as itself. If i is out of range, ok is false.
func (t Text) CodepointAt(i int) (cp rune, ok bool) {
	cp, w := codeunit.DecodeAt(t.str, i)
	return cp, w > 0
}

// Slice returns the graphemes [begin, end) of t. Negative indices count
// from the end of t; indices are clamped to [0, t.Len()]. If begin is not
// less than end, the result is empty.
func (t Text) Slice(begin, end int) Text {
	offsets := cluster.UnitOffsets(t.str)
	n := len(offsets)
	begin, end = clampIndex(begin, n), clampIndex(end, n)
	if begin >= end {
		return Text{}
	}
	from := offsets[begin]
	to := t.str.Len()
	if end < n {
		to = offsets[end]
	}
	return Text{str: t.str.Slice(from, to)}
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// IndexOf returns the grapheme index of the first occurrence of search in t,
// or -1 if search is not contained. If a match starts inside a grapheme, the
// index of that grapheme is returned. Matches never start or end between the
// halves of a surrogate pair. An empty search is found at index 0.
func (t Text) IndexOf(search Text) int {
	if search.IsVoid() {
		return 0
	}
	at := t.str.IndexScalar(search.str, 0)
	if at < 0 {
		return -1
	}
	offsets := cluster.UnitOffsets(t.str)
	pos, found := slices.BinarySearch(offsets, at)
	if found {
		return pos
	}
	return pos - 1
}

// Includes reports whether keyword occurs in t.
func (t Text) Includes(keyword Text) bool {
	return t.str.IndexScalar(keyword.str, 0) >= 0
}
