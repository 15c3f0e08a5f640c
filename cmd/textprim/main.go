/*
Command textprim shows how scripts see a piece of text.

It prints the code units, codepoints, graphemes and UTF-8 bytes of its input,
measures and wraps it for the terminal, and optionally draws random numbers
from a seeded generator:

	textprim -width 30 "The quick brown fox jumps over the lazy dog"
	textprim -escapes 'a\uD83Db'
	textprim -seed 42 -draws 3 -min 1 -max 6 dice

Input is taken from the command line arguments or, if there are none, from
stdin. Configuration may also be given by environment variables
TEXTPRIM_TRACE, TEXTPRIM_WIDTH, TEXTPRIM_ALGO, TEXTPRIM_NO_COLOR and
TEXTPRIM_ESCAPES; flags take precedence.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}
	setupTracing(cfg.Trace)
	if cfg.Width == 0 {
		cfg.Width = terminalWidth()
	}
	if err := run(cfg, uax11.ContextFromEnvironment(), os.Stdin, os.Stdout); err != nil {
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// setupTracing directs all tracers to a Go logger on stderr.
func setupTracing(level string) {
	tracer := gologadapter.New()
	tracer.SetOutput(os.Stderr)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

// terminalWidth returns the width of the terminal attached to stdout, or 65
// if stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 65
}
