package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color func() PrintFunc
type PrintFunc func(io.Writer, string, ...interface{})

func Red() PrintFunc {
	return color.New(color.FgRed).FprintfFunc()
}
func Yellow() PrintFunc {
	return color.New(color.FgYellow).FprintfFunc()
}
func Cyan() PrintFunc {
	return color.New(color.FgCyan).FprintfFunc()
}

// Printer writes the interpreter's own messages, with optional color.
// Program output never passes through it.
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  bool
}

func (p *Printer) fprintf(w io.Writer, c Color, s string, args ...interface{}) {
	if !p.Color {
		fmt.Fprintf(w, s, args...)
		return
	}
	print := c()
	print(w, s, args...)
}

// Outf prints a line to Stdout.
func (p *Printer) Outf(c Color, s string, args ...interface{}) {
	p.fprintf(p.Stdout, c, s+"\n", args...)
}

// Warnf prints to Stderr in yellow.
func (p *Printer) Warnf(s string, args ...interface{}) {
	p.fprintf(p.Stderr, Yellow, s, args...)
}

// Error reports a failed dispatch. Errors produced by the interpreter print
// their message and, if present, a second detail line.
func (p *Printer) Error(err error) {
	var shellErr *Error
	if !errors.As(err, &shellErr) {
		p.fprintf(p.Stderr, Red, "Error: %v\n", err)
		return
	}

	if shellErr.Err != nil {
		p.fprintf(p.Stderr, Red, "Error: %s: %v\n", shellErr.Msg, shellErr.Err)
	} else {
		p.fprintf(p.Stderr, Red, "Error: %s\n", shellErr.Msg)
	}
	if shellErr.Detail != "" {
		p.fprintf(p.Stderr, Yellow, "%s\n", shellErr.Detail)
	}
}
