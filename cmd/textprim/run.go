package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/codeunit"
	"github.com/npillmayer/textprim/metrics"
	"github.com/npillmayer/textprim/rng"
	"github.com/npillmayer/uax/uax11"
)

// tracer writes to trace with key 'textprim.cmd'
func tracer() tracing.Trace {
	return tracing.Select("textprim.cmd")
}

// run reports on the input text to out.
func run(cfg Config, ctx *uax11.Context, in io.Reader, out io.Writer) error {
	text, err := readInput(cfg, in)
	if err != nil {
		return err
	}
	con := newConsole(out, cfg.NoColor)
	if err := report(con, text); err != nil {
		return err
	}
	if err := measure(con, text, cfg.Width, ctx); err != nil {
		return err
	}
	if cfg.Draws > 0 {
		return draw(con, cfg)
	}
	return nil
}

// readInput takes the text from the arguments or, if there are none, from in.
func readInput(cfg Config, in io.Reader) (textprim.Text, error) {
	var raw string
	if len(cfg.Args) > 0 {
		raw = strings.Join(cfg.Args, " ")
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			return textprim.Text{}, fmt.Errorf("read input: %w", err)
		}
		if _, err := textprim.FromUTF8Bytes(b); err != nil {
			return textprim.Text{}, fmt.Errorf("read input: %w", err)
		}
		raw = strings.TrimRight(string(b), "\r\n")
	}
	if cfg.Escapes {
		return unescape(raw), nil
	}
	return textprim.FromString(raw), nil
}

// unescape replaces \uXXXX sequences by the code unit XXXX. This is the only
// way to enter isolated surrogates.
func unescape(s string) textprim.Text {
	units := make([]codeunit.Unit, 0, len(s))
	for len(s) > 0 {
		if len(s) >= 6 && s[0] == '\\' && s[1] == 'u' {
			if u, err := strconv.ParseUint(s[2:6], 16, 16); err == nil {
				units = append(units, codeunit.Unit(u))
				s = s[6:]
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s)
		units = codeunit.AppendScalar(units, r)
		s = s[size:]
	}
	return textprim.FromUnits(units)
}

// report prints the views of a text.
func report(con *console, text textprim.Text) error {
	units := text.CodeUnitValues()
	hexUnits := make([]string, len(units))
	for i, u := range units {
		hexUnits[i] = fmt.Sprintf("%04X", u)
	}
	cps := text.CodepointValues()
	hexCps := make([]string, len(cps))
	for i, cp := range cps {
		hexCps[i] = fmt.Sprintf("U+%04X", cp)
	}
	gs := text.Graphemes()
	quoted := make([]string, len(gs))
	for i, g := range gs {
		quoted[i] = `"` + con.display(g) + `"`
	}
	lines := []struct {
		name  string
		count int
		items []string
	}{
		{"code units", len(units), hexUnits},
		{"codepoints", len(cps), hexCps},
		{"graphemes", len(gs), quoted},
	}
	if err := con.field("text", "%s", con.display(text)); err != nil {
		return err
	}
	for _, l := range lines {
		if err := con.field(l.name, "%d  %s", l.count, strings.Join(l.items, " ")); err != nil {
			return err
		}
	}
	b, err := text.UTF8Bytes()
	if err != nil {
		tracer().Infof("text has no UTF-8 form: %v", err)
		return con.field("utf-8", "-  %v", err)
	}
	hexBytes := make([]string, len(b))
	for i, x := range b {
		hexBytes[i] = fmt.Sprintf("%02X", x)
	}
	return con.field("utf-8", "%d  %s", len(b), strings.Join(hexBytes, " "))
}

// measure prints metrics of a text and the text wrapped to width cells.
func measure(con *console, text textprim.Text, width int, ctx *uax11.Context) error {
	n := text.Len()
	cells, err := metrics.Count(text, 0, n, metrics.CellWidth(ctx))
	if err != nil {
		return err
	}
	words, err := metrics.Count(text, 0, n, metrics.Words())
	if err != nil {
		return err
	}
	lines, err := metrics.Count(text, 0, n, metrics.Lines())
	if err != nil {
		return err
	}
	if err := con.field("size", "%d cells, %d words, %d lines", cells, words, lines); err != nil {
		return err
	}
	spans, err := metrics.Find(text, 0, n, metrics.LineWrap(width, ctx))
	if err != nil {
		return err
	}
	if err := con.field("wrapped", "at %d cells", width); err != nil {
		return err
	}
	for _, span := range spans {
		if err := con.wrapped(text.Slice(span.Pos, span.End())); err != nil {
			return err
		}
	}
	return nil
}

// draw prints random draws. Seeds which read as numbers are used as numbers.
func draw(con *console, cfg Config) error {
	algo, err := rng.ParseAlgorithm(cfg.Algo)
	if err != nil {
		return err
	}
	var seed rng.Seed
	if cfg.Seed == "" {
		if seed, err = rng.NewSeed(); err != nil {
			return err
		}
	} else if x, ok := textprim.FromString(cfg.Seed).ToNum(); ok {
		seed = rng.NumberSeed(x)
	} else {
		seed = rng.StringSeed(cfg.Seed)
	}
	r, err := rng.New(seed, rng.WithAlgorithm(algo))
	if err != nil {
		return err
	}
	if err := con.field("random", "%s, seed %q", r.Algorithm(), seed.String()); err != nil {
		return err
	}
	for i := 0; i < cfg.Draws; i++ {
		var s string
		if cfg.Max > cfg.Min {
			k, err := r.Range(cfg.Min, cfg.Max)
			if err != nil {
				return err
			}
			s = strconv.FormatInt(k, 10)
		} else {
			s = textprim.FormatNumber(r.Float()).String()
		}
		if err := con.println("  " + s); err != nil {
			return err
		}
	}
	return nil
}
