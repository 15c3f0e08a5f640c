package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func runForTest(t *testing.T, cfg Config, stdin string) string {
	t.Helper()
	cfg.NoColor = true
	if cfg.Width == 0 {
		cfg.Width = 65
	}
	if cfg.Algo == "" {
		cfg.Algo = "arc4"
	}
	var out bytes.Buffer
	if err := run(cfg, uax11.LatinContext, strings.NewReader(stdin), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out.String()
}

func expectLines(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestRunViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprim.cmd")
	defer teardown()
	//
	out := runForTest(t, Config{Args: []string{"hello", "world"}, Width: 6}, "")
	expectLines(t, out,
		"text        hello world\n",
		"code units  11  0068 0065 006C 006C 006F 0020",
		"codepoints  11  U+0068 U+0065",
		`graphemes   11  "h" "e" "l"`,
		"utf-8       11  68 65 6C 6C 6F 20",
		"size        11 cells, 2 words, 1 lines\n",
		"wrapped     at 6 cells\n",
		"| hello \n| world\n",
	)
}

func TestRunIsolatedSurrogate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprim.cmd")
	defer teardown()
	//
	out := runForTest(t, Config{Args: []string{`a\uD83Db`}, Escapes: true}, "")
	expectLines(t, out,
		"text        a<D83D>b\n",
		"code units  3  0061 D83D 0062\n",
		"codepoints  3  U+0061 U+D83D U+0062\n",
		`graphemes   3  "a" "<D83D>" "b"`,
		"utf-8       -  ",
	)
}

func TestRunSurrogatePairEscape(t *testing.T) {
	out := runForTest(t, Config{Args: []string{`\uD83D\uDE00`}, Escapes: true}, "")
	expectLines(t, out,
		"code units  2  D83D DE00\n",
		"codepoints  1  U+1F600\n",
		"utf-8       4  F0 9F 98 80\n",
	)
}

func TestRunFromStdin(t *testing.T) {
	out := runForTest(t, Config{}, "from stdin\n")
	expectLines(t, out, "text        from stdin\n")
}

func TestRunRejectsMalformedStdin(t *testing.T) {
	cfg := Config{NoColor: true, Width: 65, Algo: "arc4"}
	var out bytes.Buffer
	if err := run(cfg, uax11.LatinContext, bytes.NewReader([]byte{'a', 0xff}), &out); err == nil {
		t.Fatalf("expected malformed UTF-8 to be rejected")
	}
}

func TestRunDraws(t *testing.T) {
	out := runForTest(t, Config{Args: []string{"x"}, Seed: "42", Draws: 3}, "")
	expectLines(t, out,
		"random      arc4, seed \"42\"\n",
		"  0.00701751618236155\n  0.17185490054868188\n  0.967001069269818\n",
	)
	out = runForTest(t, Config{Args: []string{"x"}, Seed: "42", Draws: 3, Min: 1, Max: 6}, "")
	expectLines(t, out, "  1\n  2\n  6\n")
}

func TestRunUnknownAlgorithm(t *testing.T) {
	cfg := Config{Args: []string{"x"}, NoColor: true, Width: 65, Algo: "dice", Draws: 1}
	var out bytes.Buffer
	if err := run(cfg, uax11.LatinContext, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected unknown algorithm to fail")
	}
}
