package rng

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textprim/codeunit"
)

func TestSeedrandomCompatibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprim.rng")
	defer teardown()
	//
	r, err := New(StringSeed("hello."))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.9282578795792454, 0.3752569768646784, 0.7316977468919549}
	for i, w := range want {
		if got := r.Float(); got != w {
			t.Fatalf("draw #%d = %v, want %v", i, got, w)
		}
	}
	r, _ = New(StringSeed(""))
	if got := r.Float(); got != 0.23144008215179881 {
		t.Fatalf("draw for empty seed = %v", got)
	}
}

func TestNumberSeedIsDecimalText(t *testing.T) {
	a, _ := New(NumberSeed(42))
	b, _ := New(StringSeed("42"))
	if x := a.Float(); x != 0.00701751618236155 {
		t.Fatalf("first draw for seed 42 = %v", x)
	}
	b.Float()
	for i := 0; i < 20; i++ {
		if a.Float() != b.Float() {
			t.Fatalf("number seed and text seed diverge at draw %d", i)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	for _, algo := range []Algorithm{ARC4, ChaCha20} {
		a, err := New(NumberSeed(42), WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		b, _ := New(NumberSeed(42), WithAlgorithm(algo))
		if a.Algorithm() != algo {
			t.Fatalf("Algorithm() = %s, want %s", a.Algorithm(), algo)
		}
		for i := 0; i < 500; i++ {
			x, y := a.Float(), b.Float()
			if x != y {
				t.Fatalf("%s: draw %d differs: %v != %v", algo, i, x, y)
			}
			if x < 0 || x >= 1 {
				t.Fatalf("%s: draw %d out of [0,1): %v", algo, i, x)
			}
		}
	}
}

func TestAlgorithmsDiffer(t *testing.T) {
	a, _ := New(StringSeed("seed"))
	b, _ := New(StringSeed("seed"), WithAlgorithm(ChaCha20))
	same := 0
	for i := 0; i < 10; i++ {
		if a.Float() == b.Float() {
			same++
		}
	}
	if same == 10 {
		t.Fatalf("ARC4 and ChaCha20 produce the same sequence")
	}
}

func TestSurrogateSeed(t *testing.T) {
	seed := TextSeed(codeunit.FromUnits([]codeunit.Unit{0xD800, 'x'}))
	for _, algo := range []Algorithm{ARC4, ChaCha20} {
		a, _ := New(seed, WithAlgorithm(algo))
		b, _ := New(seed, WithAlgorithm(algo))
		if a.Float() != b.Float() {
			t.Fatalf("%s: surrogate seed is not deterministic", algo)
		}
	}
}

func TestRangeSingleValue(t *testing.T) {
	r, _ := New(NumberSeed(7))
	for i := 0; i < 10; i++ {
		n, err := r.Range(1, 1)
		if err != nil || n != 1 {
			t.Fatalf("Range(1,1) = %d, %v", n, err)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	for _, algo := range []Algorithm{ARC4, ChaCha20} {
		r, _ := New(StringSeed("dice"), WithAlgorithm(algo))
		seen := make(map[int64]bool)
		for i := 0; i < 2000; i++ {
			n, err := r.Range(1, 6)
			if err != nil {
				t.Fatal(err)
			}
			if n < 1 || n > 6 {
				t.Fatalf("%s: Range(1,6) = %d", algo, n)
			}
			seen[n] = true
		}
		if len(seen) != 6 {
			t.Fatalf("%s: not every face reached: %v", algo, seen)
		}
		n, _ := r.Range(-3, -1)
		if n < -3 || n > -1 {
			t.Fatalf("%s: Range(-3,-1) = %d", algo, n)
		}
	}
}

func TestRangeErrorsKeepState(t *testing.T) {
	a, _ := New(NumberSeed(1))
	b, _ := New(NumberSeed(1))
	if _, err := a.Range(5, 1); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := a.Range(math.MinInt64, math.MaxInt64); !errors.Is(err, ErrRangeTooWide) {
		t.Fatalf("expected ErrRangeTooWide, got %v", err)
	}
	if _, err := a.Range(0, 1<<53); !errors.Is(err, ErrRangeTooWide) {
		t.Fatalf("expected ErrRangeTooWide for 2^53+1 values, got %v", err)
	}
	if a.Float() != b.Float() {
		t.Fatalf("failed Range calls advanced the generator")
	}
	if n, err := a.Range(0, 1<<53-1); err != nil || n < 0 {
		t.Fatalf("Range over 2^53 values = %d, %v", n, err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{"arc4": ARC4, "RC4": ARC4, "": ARC4, "ChaCha20": ChaCha20}
	for name, want := range cases {
		got, err := ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %s, %v", name, got, err)
		}
	}
	if _, err := ParseAlgorithm("mt19937"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestAuto(t *testing.T) {
	r, err := Auto(WithAlgorithm(ChaCha20))
	if err != nil {
		t.Fatal(err)
	}
	if x := r.Float(); x < 0 || x >= 1 {
		t.Fatalf("draw out of [0,1): %v", x)
	}
}
