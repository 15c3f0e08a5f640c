/*
Package metrics provides some pre-manufactured metrics on texts.

Metrics scan a text and report items such as words or lines, or measure
properties such as the display width of a text on a terminal. Positions and
lengths are counted in graphemes, the units scripts index texts with.

	n, _ := metrics.Count(text, 0, text.Len(), metrics.Words())
	lines, _ := metrics.Find(text, 0, text.Len(), metrics.LineWrap(40, nil))

Display widths follow UAX #11 (“East Asian Width”), line wrapping uses the
break opportunities of UAX #14 (“Line Breaking Algorithm”).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textprim.metrics'
func tracer() tracing.Trace {
	return tracing.Select("textprim.metrics")
}
