package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes human-facing console lines to an injected writer, keeping
// command code and tests decoupled from a fixed stream.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a Printer writing to out; nil defaults to stdout.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// From prints message prefixed with its origin in square brackets:
//
//	[name] message
func (p *Printer) From(name, message string) {
	fmt.Fprintf(p.out, "[%s] %s\n", name, message)
}

// Pretty prints message framed by the flourish repeated count times on each
// side:
//
//	=== message ===
func (p *Printer) Pretty(message, flourish string, count int) {
	frame := strings.Repeat(flourish, max(count, 0))
	fmt.Fprintf(p.out, "%s %s %s\n", frame, message, frame)
}
