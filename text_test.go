package textprim

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textprim/utf8codec"
)

func strs(texts []Text) []string {
	s := make([]string, len(texts))
	for i, t := range texts {
		s[i] = t.String()
	}
	return s
}

func TestEmojiLengths(t *testing.T) {
	x := FromString("😀")
	if x.LenIn(CodeUnits) != 2 {
		t.Errorf("code units = %d, want 2", x.LenIn(CodeUnits))
	}
	if x.LenIn(Codepoints) != 1 {
		t.Errorf("codepoints = %d, want 1", x.LenIn(Codepoints))
	}
	if x.LenIn(Graphemes) != 1 || x.Len() != 1 {
		t.Errorf("graphemes = %d, want 1", x.Len())
	}
	if !slices.Equal(x.CodeUnitValues(), []uint16{0xD83D, 0xDE00}) {
		t.Errorf("code units = %04x", x.CodeUnitValues())
	}
}

func TestUTF8KnownValues(t *testing.T) {
	b, err := FromString("A").UTF8Bytes()
	if err != nil || !slices.Equal(b, []byte{65}) {
		t.Fatalf("UTF8Bytes(A) = %v, %v", b, err)
	}
	b, err = FromString("€").UTF8Bytes()
	if err != nil || !slices.Equal(b, []byte{226, 130, 172}) {
		t.Fatalf("UTF8Bytes(€) = %v, %v", b, err)
	}
	x, err := FromUTF8Bytes([]byte{226, 130, 172})
	if err != nil || x.String() != "€" {
		t.Fatalf("FromUTF8Bytes = %q, %v", x, err)
	}
}

func TestIsolatedSurrogateViews(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	x := FromUnits([]uint16{'a', 0xD83D, 'b'})
	if x.Len() != 3 {
		t.Errorf("Len = %d, want 3", x.Len())
	}
	if !slices.Equal(x.CodepointValues(), []rune{'a', 0xD83D, 'b'}) {
		t.Errorf("codepoints = %U", x.CodepointValues())
	}
	if _, err := x.UTF8Bytes(); !errors.Is(err, utf8codec.ErrIsolatedSurrogate) {
		t.Errorf("expected isolated surrogate error, got %v", err)
	}
	y := FromUnits([]uint16{0xD83D, 0xDE00, 0xDC00})
	cps := y.Codepoints()
	if len(cps) != 2 || cps[0].LenIn(CodeUnits) != 2 || cps[1].LenIn(CodeUnits) != 1 {
		t.Errorf("Codepoints split wrongly: %d parts", len(cps))
	}
	units := y.CodeUnits()
	if len(units) != 3 || units[1].CodeUnitValues()[0] != 0xDE00 {
		t.Errorf("CodeUnits split wrongly")
	}
}

func TestCodepointRoundTrip(t *testing.T) {
	for _, units := range [][]uint16{
		{0xDE00, 0xD83D, 0xDE00, 0xD800},
		{'x', 0xDBFF, 0xDFFF},
		{},
	} {
		x := FromUnits(units)
		y, err := FromCodepoints(x.CodepointValues())
		if err != nil {
			t.Fatalf("FromCodepoints: %v", err)
		}
		if !x.Equal(y) {
			t.Fatalf("round trip %04x gave %04x", units, y.CodeUnitValues())
		}
	}
}

func TestFromCodepoint(t *testing.T) {
	if _, err := FromCodepoint(0x110000); !errors.Is(err, ErrInvalidCodepoint) {
		t.Errorf("expected ErrInvalidCodepoint, got %v", err)
	}
	if _, err := FromCodepoint(-1); !errors.Is(err, ErrInvalidCodepoint) {
		t.Errorf("expected ErrInvalidCodepoint for -1, got %v", err)
	}
	x, err := FromCodepoint(0xD800)
	if err != nil || !slices.Equal(x.CodeUnitValues(), []uint16{0xD800}) {
		t.Errorf("FromCodepoint(0xD800) = %04x, %v", x.CodeUnitValues(), err)
	}
	x, _ = FromCodepoint(0x1F600)
	if x.String() != "😀" {
		t.Errorf("FromCodepoint(0x1F600) = %q", x)
	}
}

func TestFromUTF8BytesRejectsMalformed(t *testing.T) {
	_, err := FromUTF8Bytes([]byte{'o', 'k', 0xC0, 0xAF})
	if !errors.Is(err, utf8codec.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestPick(t *testing.T) {
	x := FromString("aé😀")
	if g, ok := x.Pick(1); !ok || g.String() != "é" {
		t.Errorf("Pick(1) = %q, %v", g, ok)
	}
	if g, ok := x.Pick(2); !ok || g.String() != "😀" {
		t.Errorf("Pick(2) = %q, %v", g, ok)
	}
	if _, ok := x.Pick(3); ok {
		t.Errorf("Pick(3) beyond grapheme count reported found")
	}
	if _, ok := x.Pick(-1); ok {
		t.Errorf("Pick(-1) reported found")
	}
	if _, ok := (Text{}).Pick(0); ok {
		t.Errorf("Pick on empty text reported found")
	}
}

func TestCharCodeAndCodepointAt(t *testing.T) {
	x := FromString("a😀")
	if u, ok := x.CharCodeAt(1); !ok || u != 0xD83D {
		t.Errorf("CharCodeAt(1) = %04x, %v", u, ok)
	}
	if cp, ok := x.CodepointAt(1); !ok || cp != 0x1F600 {
		t.Errorf("CodepointAt(1) = %U, %v", cp, ok)
	}
	if cp, ok := x.CodepointAt(2); !ok || cp != 0xDE00 {
		t.Errorf("CodepointAt(2) = %U, want low surrogate", cp)
	}
	if _, ok := x.CodepointAt(3); ok {
		t.Errorf("CodepointAt(3) reported found")
	}
	if _, ok := x.CharCodeAt(-1); ok {
		t.Errorf("CharCodeAt(-1) reported found")
	}
}

func TestSlice(t *testing.T) {
	x := FromString("hello")
	cases := []struct {
		begin, end int
		want       string
	}{
		{1, 3, "el"},
		{-3, 5, "llo"},
		{0, 99, "hello"},
		{3, 1, ""},
		{-99, 2, "he"},
		{2, -1, "ll"},
	}
	for _, c := range cases {
		if got := x.Slice(c.begin, c.end).String(); got != c.want {
			t.Errorf("Slice(%d,%d) = %q, want %q", c.begin, c.end, got, c.want)
		}
	}
	y := FromString("😀e\u0301x")
	if got := y.Slice(1, 2).String(); got != "e\u0301" {
		t.Errorf("Slice over graphemes = %q", got)
	}
}

func TestIndexOf(t *testing.T) {
	x := FromString("😀e\u0301x")
	if i := x.IndexOf(FromString("x")); i != 2 {
		t.Errorf("IndexOf(x) = %d, want 2", i)
	}
	if i := x.IndexOf(FromString("\u0301")); i != 1 {
		t.Errorf("IndexOf(acute) = %d, want 1", i)
	}
	if i := x.IndexOf(Text{}); i != 0 {
		t.Errorf("IndexOf(empty) = %d, want 0", i)
	}
	if i := x.IndexOf(FromString("zz")); i != -1 {
		t.Errorf("IndexOf(zz) = %d, want -1", i)
	}
	y := FromUnits([]uint16{0xD83D, 0xDE00, 'x', 0xD83D})
	if i := y.IndexOf(FromUnits([]uint16{0xD83D})); i != 2 {
		t.Errorf("IndexOf(lone high) = %d, want 2", i)
	}
	if y.Includes(FromUnits([]uint16{0xDE00})) {
		t.Errorf("Includes matched half of a surrogate pair")
	}
	if !y.Includes(FromString("😀x")) {
		t.Errorf("Includes missed a match")
	}
}

func TestReplaceAll(t *testing.T) {
	cases := []struct {
		in, old, repl, want string
	}{
		{"a-b-c", "-", "+", "a+b+c"},
		{"aaa", "aa", "b", "ba"},
		{"abc", "x", "y", "abc"},
		{"ab", "", "-", "a-b"},
		{"éé", "", "|", "é|é"},
		{"", "a", "b", ""},
	}
	for _, c := range cases {
		got := FromString(c.in).Replace(FromString(c.old), FromString(c.repl))
		if got.String() != c.want {
			t.Errorf("%q.Replace(%q, %q) = %q, want %q", c.in, c.old, c.repl, got, c.want)
		}
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		in, sep string
		want    []string
	}{
		{"a,b,,c", ",", []string{"a", "b", "", "c"}},
		{",a,", ",", []string{"", "a", ""}},
		{"", ",", []string{""}},
		{"ab", "", []string{"a", "b"}},
		{"a😀b", "😀", []string{"a", "b"}},
		{"", "", []string{}},
	}
	for _, c := range cases {
		got := strs(FromString(c.in).Split(FromString(c.sep)))
		if !slices.Equal(got, c.want) {
			t.Errorf("%q.Split(%q) = %q, want %q", c.in, c.sep, got, c.want)
		}
	}
}

func TestTrim(t *testing.T) {
	if got := FromString("\u3000 hi there\t\n ").Trim().String(); got != "hi there" {
		t.Errorf("Trim = %q", got)
	}
	x := FromUnits([]uint16{' ', 0xD800, ' '}).Trim()
	if !slices.Equal(x.CodeUnitValues(), []uint16{0xD800}) {
		t.Errorf("Trim lost an isolated surrogate: %04x", x.CodeUnitValues())
	}
	if !FromString(" \t ").Trim().IsVoid() {
		t.Errorf("Trim of blank text not empty")
	}
}

func TestCaseMapping(t *testing.T) {
	if got := FromString("straße").Upper().String(); got != "STRASSE" {
		t.Errorf("Upper = %q", got)
	}
	if got := FromString("\u00c0B").Lower().String(); got != "\u00e0b" {
		t.Errorf("Lower = %q", got)
	}
	x := FromUnits([]uint16{'a', 0xDC00, 'b'}).Upper()
	if !slices.Equal(x.CodeUnitValues(), []uint16{'A', 0xDC00, 'B'}) {
		t.Errorf("Upper around isolated surrogate = %04x", x.CodeUnitValues())
	}
}

func TestCompareAsComparator(t *testing.T) {
	texts := []Text{FromString("b"), FromString("a"), FromString("c")}
	slices.SortStableFunc(texts, Compare)
	if got := strs(texts); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("ascending sort = %q", got)
	}
	slices.SortStableFunc(texts, CompareDesc)
	if got := strs(texts); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("descending sort = %q", got)
	}
	if Compare(FromString("a"), FromString("a")) != 0 {
		t.Errorf("Compare of equal texts not 0")
	}
}

func TestConcatAndJoin(t *testing.T) {
	x := FromString("a").Concat(LF, FromString("b"))
	if x.String() != "a\nb" {
		t.Errorf("Concat = %q", x)
	}
	j := Join([]Text{FromString("x"), FromString("y")}, FromString(", "))
	if j.String() != "x, y" {
		t.Errorf("Join = %q", j)
	}
}

func TestRangeGraphemes(t *testing.T) {
	var seen []string
	for i, g := range FromString("ab😀c").RangeGraphemes() {
		if i == 3 {
			break
		}
		seen = append(seen, g.String())
	}
	if !slices.Equal(seen, []string{"a", "b", "😀"}) {
		t.Errorf("RangeGraphemes = %q", seen)
	}
}
