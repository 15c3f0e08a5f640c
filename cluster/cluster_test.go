package cluster

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textprim/codeunit"
)

func TestSegmentCombiningAndEmoji(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprim.cluster")
	defer teardown()
	//
	text := "a" + "e\u0301" + "👨\u200d👩\u200d👧" + "b"
	got := Segment([]rune(text))
	if len(got) != 4 {
		t.Fatalf("Segment gave %d clusters, want 4: %q", len(got), got)
	}
	if string(got[1]) != "e\u0301" {
		t.Fatalf("cluster[1] = %q, want e+acute", string(got[1]))
	}
	if string(got[2]) != "👨\u200d👩\u200d👧" {
		t.Fatalf("cluster[2] = %q, want family emoji", string(got[2]))
	}
}

func TestSegmentFlagsAndCRLF(t *testing.T) {
	text := "🇯🇵🇩🇪\r\nx"
	got := Segment([]rune(text))
	want := []string{"🇯🇵", "🇩🇪", "\r\n", "x"}
	if len(got) != len(want) {
		t.Fatalf("Segment = %q, want %q", got, want)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Fatalf("cluster[%d] = %q, want %q", i, string(got[i]), want[i])
		}
	}
}

func TestIsolatedSurrogateIsAtom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprim.cluster")
	defer teardown()
	//
	scalars := []rune{'e', 0xD800, 0x0301, 'x'}
	bounds := Boundaries(scalars)
	if !slices.Equal(bounds, []int{0, 1, 2, 3}) {
		t.Fatalf("Boundaries = %v, want [0 1 2 3]", bounds)
	}
	scalars = []rune{0xDC00, 0xD800}
	if got := Segment(scalars); len(got) != 2 {
		t.Fatalf("two lone surrogates gave %d clusters", len(got))
	}
}

func TestSegmentEmpty(t *testing.T) {
	if got := Segment(nil); len(got) != 0 {
		t.Fatalf("Segment(nil) = %v", got)
	}
	if Count(codeunit.String{}) != 0 {
		t.Fatalf("Count of empty string not 0")
	}
}

func TestSplitNeverBreaksPairs(t *testing.T) {
	s := codeunit.FromString("x😀\u0301🏳\ufe0f\u200d🌈y")
	parts := Split(s)
	if !codeunit.Join(parts, codeunit.String{}).Equal(s) {
		t.Fatalf("Split parts do not reconstruct the source")
	}
	for _, p := range parts {
		if !p.IsWellFormed() {
			t.Fatalf("cluster %04x splits a surrogate pair", p.Units())
		}
	}
	if len(parts) != 4 {
		t.Fatalf("Split gave %d clusters, want 4", len(parts))
	}
}

func TestUnitOffsets(t *testing.T) {
	s := codeunit.FromUnits([]codeunit.Unit{'a', 0xD83D, 0xDE00, 0xDC00, 'b'})
	got := UnitOffsets(s)
	if !slices.Equal(got, []int{0, 1, 3, 4}) {
		t.Fatalf("UnitOffsets = %v, want [0 1 3 4]", got)
	}
	if Count(s) != 4 {
		t.Fatalf("Count = %d, want 4", Count(s))
	}
}
