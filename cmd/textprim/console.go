package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/codeunit"
	"github.com/npillmayer/textprim/host"
)

// console prints labeled report lines. Isolated surrogates, which have no
// terminal representation, are shown as highlighted <XXXX> markers.
type console struct {
	out       host.Output
	label     *color.Color
	surrogate *color.Color
	rule      *color.Color
}

func newConsole(w io.Writer, noColor bool) *console {
	c := &console{
		out:       host.WriterOutput{W: w},
		label:     color.New(color.FgBlue, color.Bold),
		surrogate: color.New(color.FgRed, color.ReverseVideo),
		rule:      color.New(color.FgHiBlack),
	}
	if noColor {
		for _, col := range []*color.Color{c.label, c.surrogate, c.rule} {
			col.DisableColor()
		}
	}
	return c
}

// println prints a single line of output.
func (c *console) println(s string) error {
	return c.out.Print(textprim.FromString(s))
}

// field prints a labeled line.
func (c *console) field(name string, format string, args ...any) error {
	return c.println(c.label.Sprintf("%-11s", name) + " " + fmt.Sprintf(format, args...))
}

// display renders a text for the terminal.
func (c *console) display(t textprim.Text) string {
	var sb strings.Builder
	for _, cp := range t.Codepoints() {
		units := cp.CodeUnitValues()
		if len(units) == 1 && codeunit.IsSurrogate(rune(units[0])) {
			sb.WriteString(c.surrogate.Sprintf("<%04X>", units[0]))
			continue
		}
		sb.WriteString(cp.String())
	}
	return sb.String()
}

// wrapped prints a line of wrapped output.
func (c *console) wrapped(line textprim.Text) error {
	return c.println(c.rule.Sprint("| ") + c.display(line))
}
