package metrics

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/textprim"
)

// Span is a range of graphemes inside a text.
//
// Pos is the index of the first grapheme, Len the number of graphemes.
type Span struct {
	Pos int
	Len int
}

// End returns the index after the last grapheme of s.
func (s Span) End() int {
	return s.Pos + s.Len
}

// MetricValue is the result of applying a metric to a text.
type MetricValue interface {
	Len() int // number of graphemes measured
}

// Metric is a metric to calculate on a text.
//
// Apply must not hold unguarded global state, as clients may apply a metric
// to different texts concurrently.
type Metric interface {
	Apply(text textprim.Text) MetricValue
}

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, emojis, …
type CountingMetric interface {
	Metric
	Count(MetricValue) int
}

// ScanningMetric searches a text for items (such as lines, words, emojis, …) and
// returns their locations.
type ScanningMetric interface {
	Metric
	Locations(MetricValue) []Span
}

// ApplyMetric applies a metric to the graphemes [i, j) of a text.
func ApplyMetric(text textprim.Text, i, j int, metric Metric) (MetricValue, error) {
	if i < 0 || j < i || j > text.Len() {
		return nil, fmt.Errorf("metric range [%d,%d) of text with %d graphemes: %w",
			i, j, text.Len(), textprim.ErrIllegalArguments)
	}
	return metric.Apply(text.Slice(i, j)), nil
}

// Count applies a counting metric to a text.
func Count(text textprim.Text, i, j int, metric CountingMetric) (int, error) {
	value, err := ApplyMetric(text, i, j, metric)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return metric.Count(value), nil
}

// Find applies a scanning metric to a text. Span positions are relative to
// the start of text, not to i.
func Find(text textprim.Text, i, j int, metric ScanningMetric) ([]Span, error) {
	value, err := ApplyMetric(text, i, j, metric)
	if err != nil {
		return []Span{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	spans := metric.Locations(value)
	for k := range spans {
		spans[k].Pos += i
	}
	return spans, nil
}

// spansValue is the metric value of all metrics reporting spans.
type spansValue struct {
	length int
	spans  []Span
}

func (v spansValue) Len() int {
	return v.length
}
