package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/mysh/core/config"
	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

func isTerminal(v interface{}) bool {
	fd, ok := v.(fileDescriptor)
	return ok && term.IsTerminal(int(fd.Fd()))
}

// colorEnabled decides whether diagnostics written to w are colored.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}
