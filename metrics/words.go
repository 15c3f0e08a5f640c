package metrics

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
	"unicode"

	"github.com/npillmayer/textprim"
)

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric finds words, i.e. maximal runs of graphemes which are not
// white space.
type WordsMetric struct{}

// Words creates a word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply is part of interface Metric.
func (WordsMetric) Apply(text textprim.Text) MetricValue {
	gs := text.Graphemes()
	return spansValue{length: len(gs), spans: findWordSpans(gs)}
}

// Count is part of interface CountingMetric.
func (WordsMetric) Count(v MetricValue) int {
	return len(v.(spansValue).spans)
}

// Locations is part of interface ScanningMetric.
func (WordsMetric) Locations(v MetricValue) []Span {
	return slices.Clone(v.(spansValue).spans)
}

// Materialize scans graphemes [i,j) for words and returns word spans plus a
// materialized text.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators.
func (m WordsMetric) Materialize(text textprim.Text, i, j int) (WordsValue, textprim.Text, error) {
	if text.IsVoid() && i == 0 && j == 0 {
		return WordsValue{}, textprim.Text{}, nil
	}
	spans, err := Find(text, i, j, m)
	if err != nil {
		return WordsValue{}, textprim.Text{}, err
	}
	value := WordsValue{Spans: spans}
	if len(spans) == 0 {
		return value, textprim.Text{}, nil
	}
	words := make([]textprim.Text, len(spans))
	for k, span := range spans {
		words[k] = text.Slice(span.Pos, span.End())
	}
	return value, textprim.Join(words, textprim.Text{}), nil
}

func findWordSpans(gs []textprim.Text) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(gs); {
		if isSpace(gs[pos]) {
			pos++
			continue
		}
		start := pos
		for pos < len(gs) && !isSpace(gs[pos]) {
			pos++
		}
		spans = append(spans, Span{Pos: start, Len: pos - start})
	}
	return spans
}

// isSpace classifies a grapheme by its first codepoint.
func isSpace(g textprim.Text) bool {
	cp, ok := g.CodepointAt(0)
	return ok && unicode.Is(unicode.White_Space, cp)
}

// --- Lines -----------------------------------------------------------------

// LinesMetric finds lines. Lines end at LF, CR or CR LF; the line break is not
// part of the line. A line break at the end of the text does not start another
// line, and an empty text has no lines.
type LinesMetric struct{}

// Lines creates a line metric.
func Lines() LinesMetric {
	return LinesMetric{}
}

// Apply is part of interface Metric.
func (LinesMetric) Apply(text textprim.Text) MetricValue {
	gs := text.Graphemes()
	spans := make([]Span, 0, 8)
	start := 0
	for pos, g := range gs {
		if isLineBreak(g) {
			spans = append(spans, Span{Pos: start, Len: pos - start})
			start = pos + 1
		}
	}
	if start < len(gs) {
		spans = append(spans, Span{Pos: start, Len: len(gs) - start})
	}
	tracer().Debugf("found %d lines in %d graphemes", len(spans), len(gs))
	return spansValue{length: len(gs), spans: spans}
}

// Count is part of interface CountingMetric.
func (LinesMetric) Count(v MetricValue) int {
	return len(v.(spansValue).spans)
}

// Locations is part of interface ScanningMetric.
func (LinesMetric) Locations(v MetricValue) []Span {
	return slices.Clone(v.(spansValue).spans)
}

var (
	lf   = textprim.LF
	cr   = textprim.FromString("\r")
	crlf = textprim.FromString("\r\n")
)

func isLineBreak(g textprim.Text) bool {
	return g.Equal(lf) || g.Equal(crlf) || g.Equal(cr)
}
