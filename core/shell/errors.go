package shell

import (
	"errors"
	"fmt"
)

// Kind classifies why a dispatch failed.
type Kind int

const (
	KindSyntax Kind = iota + 1
	KindResolution
	KindIO
	KindConditional
	KindProcess
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindResolution:
		return "resolution"
	case KindIO:
		return "io"
	case KindConditional:
		return "conditional"
	case KindProcess:
		return "process"
	default:
		return "unknown"
	}
}

// Error is returned by every stage of a dispatch. Msg is the text shown to the
// user and Detail an optional second line.
type Error struct {
	Kind   Kind
	Msg    string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func syntaxErrorf(format string, a ...interface{}) *Error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, a...)}
}

func conditionalErrorf(format string, a ...interface{}) *Error {
	return &Error{Kind: KindConditional, Msg: fmt.Sprintf(format, a...)}
}

func resolutionError(name string) *Error {
	return &Error{Kind: KindResolution, Msg: fmt.Sprintf("executable does not exist: %s", name)}
}

func ioError(msg string, err error) *Error {
	return &Error{Kind: KindIO, Msg: msg, Err: err}
}

func usageError(usage string) *Error {
	return &Error{Kind: KindSyntax, Msg: "Unexpected number of arguments", Detail: "Usage: " + usage}
}

// KindOf returns the kind of err, or zero if err did not come from a dispatch.
func KindOf(err error) Kind {
	var shellErr *Error
	if errors.As(err, &shellErr) {
		return shellErr.Kind
	}
	return 0
}

// IsFatal reports whether err must stop the interpreter.
func IsFatal(err error) bool {
	return KindOf(err) == KindProcess
}
