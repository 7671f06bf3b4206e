//go:build debug

package gojsonpath

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

var (
	debug      bool
	debugColor bool
	debugOut   io.Writer
)

func init() {
	if out := os.Getenv("GOJSONPATH_DEBUG"); out != "" {
		debug = true
		if out == "stdout" {
			debugOut = os.Stdout
			debugColor = isatty.IsTerminal(os.Stdout.Fd())
		} else {
			debugOut = os.Stderr
			debugColor = isatty.IsTerminal(os.Stderr.Fd())
		}
	}
}

func (env *env) debugCodes(codes []*code) {
	if !debug {
		return
	}
	for i, c := range codes {
		fmt.Fprintf(debugOut, "\t%d\t%s\t%s\n", i, formatOp(c.op), debugOperand(c))
	}
	fmt.Fprintln(debugOut, "\t"+strings.Repeat("-", 20))
}

func (env *env) debugState(c *code, v any) {
	if !debug {
		return
	}
	fmt.Fprintf(debugOut, "\t-\t%s\t%s\t|\t%s\n",
		formatOp(c.op), padOperand(debugOperand(c)), Preview(v))
}

func formatOp(c opcode) string {
	s := c.String()
	if debugColor {
		s = "\x1b[35m" + s + "\x1b[0m"
	}
	return s + strings.Repeat(" ", 15-len(c.String()))
}

// padOperand aligns the operand column by display width, since keys may
// contain wide characters.
func padOperand(s string) string {
	if w := runewidth.StringWidth(s); w < 24 {
		return s + strings.Repeat(" ", 24-w)
	}
	return s
}

func debugOperand(c *code) string {
	switch c.op {
	case opkey, opindex, opdescend:
		return jsonMarshal(c.v)
	case opslice:
		s := c.v.(sliceBounds)
		if s.openEnd {
			return fmt.Sprintf("%d::%d", s.first, s.step)
		}
		return fmt.Sprintf("%d:%d:%d", s.first, s.last, s.step)
	case opfilter:
		f := c.v.(*filterCond)
		return fmt.Sprintf("%s %s", f.op, jsonMarshal(f.value))
	case opunion:
		alts := c.v.([]*code)
		xs := make([]string, len(alts))
		for i, a := range alts {
			xs[i] = a.op.String()
		}
		return strings.Join(xs, ",")
	default:
		return ""
	}
}
