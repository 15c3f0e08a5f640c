/*
Package cluster groups scalar values into extended grapheme clusters.

Cluster boundaries follow the default rules of UAX #29 ("Unicode Text
Segmentation"). Scalar sequences handled here may contain isolated
surrogates, which have no UTF-8 representation. An isolated surrogate
is treated as an atom: it always starts and ends a cluster of its own, and
runs of ordinary scalars between surrogates are segmented independently.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package cluster

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textprim/codeunit"
	"github.com/rivo/uniseg"
)

// tracer writes to trace with key 'textprim.cluster'
func tracer() tracing.Trace {
	return tracing.Select("textprim.cluster")
}

// Segment partitions scalars into grapheme clusters. Every cluster is
// non-empty and the concatenation of all clusters equals scalars.
func Segment(scalars []rune) [][]rune {
	bounds := Boundaries(scalars)
	clusters := make([][]rune, len(bounds))
	for i, start := range bounds {
		end := len(scalars)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		clusters[i] = scalars[start:end:end]
	}
	return clusters
}

// Boundaries returns the scalar offsets at which grapheme clusters start,
// in ascending order. For empty input the result is empty.
func Boundaries(scalars []rune) []int {
	bounds := make([]int, 0, len(scalars))
	runStart := 0
	for i, r := range scalars {
		if !codeunit.IsSurrogate(r) {
			continue
		}
		bounds = appendRunBoundaries(bounds, scalars[runStart:i], runStart)
		tracer().Debugf("isolated surrogate %#04x at scalar %d", r, i)
		bounds = append(bounds, i)
		runStart = i + 1
	}
	return appendRunBoundaries(bounds, scalars[runStart:], runStart)
}

// appendRunBoundaries segments a surrogate-free run starting at scalar
// offset base.
func appendRunBoundaries(bounds []int, run []rune, base int) []int {
	if len(run) == 0 {
		return bounds
	}
	g := uniseg.NewGraphemes(string(run))
	pos := base
	for g.Next() {
		bounds = append(bounds, pos)
		pos += len(g.Runes())
	}
	return bounds
}

// Split segments a code-unit string into grapheme clusters. Each cluster is
// returned as the exact code-unit substring of s it was decoded from, so
// concatenating the result reproduces s.
func Split(s codeunit.String) []codeunit.String {
	offsets := UnitOffsets(s)
	parts := make([]codeunit.String, len(offsets))
	for i, start := range offsets {
		end := s.Len()
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		parts[i] = s.Slice(start, end)
	}
	return parts
}

// UnitOffsets returns the code-unit offsets at which the grapheme clusters of
// s start.
func UnitOffsets(s codeunit.String) []int {
	scalars := codeunit.Decode(s)
	bounds := Boundaries(scalars)
	offsets := make([]int, len(bounds))
	unit, next := 0, 0
	for i, r := range scalars {
		if next < len(bounds) && bounds[next] == i {
			offsets[next] = unit
			next++
		}
		unit += scalarWidth(r)
	}
	return offsets
}

// Count returns the number of grapheme clusters in s.
func Count(s codeunit.String) int {
	return len(Boundaries(codeunit.Decode(s)))
}

func scalarWidth(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
