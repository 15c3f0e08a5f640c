package metrics

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"slices"
	"strings"
	"sync"

	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/cluster"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupClasses sync.Once

func setupGraphemes() {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
}

// chunkBytes limits the size of strings handed to the grapheme package.
const chunkBytes = 4096

// --- Cell width ------------------------------------------------------------

// widthValue is the metric value of CellWidthMetric.
type widthValue struct {
	length int
	cells  int
}

func (v widthValue) Len() int {
	return v.length
}

// CellWidthMetric measures the number of terminal cells a text occupies.
// Isolated surrogates count as U+FFFD.
type CellWidthMetric struct {
	ctx *uax11.Context
}

// CellWidth creates a width metric for a context. If ctx is nil,
// uax11.LatinContext is used.
func CellWidth(ctx *uax11.Context) CellWidthMetric {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return CellWidthMetric{ctx: ctx}
}

// Apply is part of interface Metric.
func (m CellWidthMetric) Apply(text textprim.Text) MetricValue {
	gs := text.Graphemes()
	return widthValue{length: len(gs), cells: cellWidth(gs, m.ctx)}
}

// Count is part of interface CountingMetric.
func (CellWidthMetric) Count(v MetricValue) int {
	return v.(widthValue).cells
}

// cellWidth measures graphemes in chunks, never splitting a grapheme.
func cellWidth(gs []textprim.Text, ctx *uax11.Context) int {
	setupGraphemes()
	var sb strings.Builder
	cells := 0
	flush := func() {
		if sb.Len() > 0 {
			cells += uax11.StringWidth(grapheme.StringFromString(sb.String()), ctx)
			sb.Reset()
		}
	}
	for _, g := range gs {
		s := g.String()
		if sb.Len()+len(s) > chunkBytes {
			flush()
		}
		sb.WriteString(s)
	}
	flush()
	return cells
}

func stringWidth(s string, ctx *uax11.Context) int {
	return cellWidth(textprim.FromString(s).Graphemes(), ctx)
}

// --- Line wrapping ---------------------------------------------------------

// WrapMetric breaks a text into lines fitting a given number of terminal
// cells. Lines are broken at UAX #14 break opportunities, first-fit. Mandatory
// breaks (LF, CR, CR LF and the like) always end a line; the break itself
// is not part of the line. A fragment wider than a line occupies a line of
// its own.
type WrapMetric struct {
	width int
	ctx   *uax11.Context
}

// LineWrap creates a wrapping metric for lines of width cells. If ctx is nil,
// uax11.LatinContext is used. Widths smaller than 1 are treated as 1.
func LineWrap(width int, ctx *uax11.Context) WrapMetric {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	if width < 1 {
		width = 1
	}
	return WrapMetric{width: width, ctx: ctx}
}

// Apply is part of interface Metric.
func (m WrapMetric) Apply(text textprim.Text) MetricValue {
	offsets := cluster.UnitOffsets(text.Str())
	units := m.firstFit(text.String())
	spans := make([]Span, 0, len(units))
	for _, l := range units {
		from, to := graphemeIndex(offsets, l.from), graphemeIndex(offsets, l.to)
		spans = append(spans, Span{Pos: from, Len: to - from})
	}
	return spansValue{length: len(offsets), spans: spans}
}

// Count is part of interface CountingMetric.
func (WrapMetric) Count(v MetricValue) int {
	return len(v.(spansValue).spans)
}

// Locations is part of interface ScanningMetric.
func (WrapMetric) Locations(v MetricValue) []Span {
	return slices.Clone(v.(spansValue).spans)
}

// graphemeIndex maps a code-unit offset to the index of the grapheme starting
// there, or of the next grapheme if the offset is inside a grapheme.
func graphemeIndex(offsets []int, unit int) int {
	i, _ := slices.BinarySearch(offsets, unit)
	return i
}

// unitLine is a line as a code-unit range [from, to).
type unitLine struct {
	from, to int
}

// firstFit collects lines from the break opportunities of s. s is the UTF-8
// form of a text; every rune of s corresponds to one scalar or isolated
// surrogate of the text, so positions are tracked in code units.
func (m WrapMetric) firstFit(s string) []unitLine {
	setupGraphemes()
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))
	lines := make([]unitLine, 0, 16)
	spaceleft := m.width
	linestart := true
	start, pos := 0, 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fragunits := unitLen(frag)
		body, hardBreak := cutLineBreak(frag)
		fraglen := stringWidth(strings.TrimRight(body, " \t"), m.ctx)
		if fraglen > spaceleft && !linestart { // fragment overshoots line
			lines = append(lines, unitLine{start, pos})
			tracer().Debugf("break @ %d", pos)
			start = pos
			spaceleft = m.width
		}
		spaceleft -= stringWidth(body, m.ctx)
		linestart = false
		pos += fragunits
		if hardBreak {
			lines = append(lines, unitLine{start, pos - (fragunits - unitLen(body))})
			tracer().Debugf("mandatory break @ %d", pos)
			start = pos
			spaceleft = m.width
			linestart = true
		} else if spaceleft <= 0 { // line is full, or fragment too long for a line
			lines = append(lines, unitLine{start, pos})
			tracer().Debugf("break @ %d", pos)
			start = pos
			spaceleft = m.width
			linestart = true
		}
	}
	if pos > start { // we have a partial line to consume
		lines = append(lines, unitLine{start, pos})
	}
	return lines
}

// cutLineBreak removes a trailing line break from a fragment.
func cutLineBreak(frag string) (string, bool) {
	switch {
	case strings.HasSuffix(frag, "\r\n"):
		return frag[:len(frag)-2], true
	case strings.HasSuffix(frag, "\n"), strings.HasSuffix(frag, "\r"),
		strings.HasSuffix(frag, "\v"), strings.HasSuffix(frag, "\f"):
		return frag[:len(frag)-1], true
	case strings.HasSuffix(frag, "\u0085"):
		return frag[:len(frag)-2], true
	case strings.HasSuffix(frag, "\u2028"), strings.HasSuffix(frag, "\u2029"):
		return frag[:len(frag)-3], true
	}
	return frag, false
}

// unitLen counts the UTF-16 code units of a UTF-8 string.
func unitLen(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
