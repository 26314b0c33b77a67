package shell

import (
	"errors"
	"io"
	"os"

	"github.com/josephlewis42/mysh/core/logger"
)

// DefaultFarewell is printed when the user types "exit".
const DefaultFarewell = "Now leaving mysh"

// Mode controls how the host loop treats blank lines.
type Mode int

const (
	// Interactive skips blank lines.
	Interactive Mode = iota
	// Batch stops with a failure at the first blank line.
	Batch
)

func (m Mode) String() string {
	if m == Batch {
		return "batch"
	}
	return "interactive"
}

// EventRecorder receives one event per dispatch.
type EventRecorder interface {
	Record(event logger.LogType) error
}

// Options configures a Shell.
type Options struct {
	// SearchPath lists the system directories searched after the working
	// directory. DefaultSearchPath if nil.
	SearchPath []string
	// RedirectMode is the permission of files created by ">".
	// DefaultRedirectMode if zero.
	RedirectMode os.FileMode
	// Farewell is printed on "exit". DefaultFarewell if empty.
	Farewell string
	Color    bool
	// Events is optional.
	Events EventRecorder
}

// Shell interprets lines one at a time.
type Shell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Resolver also supplies the filesystem used to open redirection files.
	Resolver *Resolver
	// Chdir changes the working directory seen by Resolver.
	Chdir func(dir string) error

	RedirectMode os.FileMode
	Farewell     string
	Printer      *Printer
	Events       EventRecorder

	lastStatus Status
	dispatches int
}

// New creates a shell working on the real filesystem and process working
// directory.
func New(stdin io.Reader, stdout, stderr io.Writer, opts Options) *Shell {
	searchPath := opts.SearchPath
	if searchPath == nil {
		searchPath = DefaultSearchPath
	}
	mode := opts.RedirectMode
	if mode == 0 {
		mode = DefaultRedirectMode
	}
	farewell := opts.Farewell
	if farewell == "" {
		farewell = DefaultFarewell
	}

	resolver := NewResolver(searchPath)
	return &Shell{
		Stdin:        stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		Resolver:     resolver,
		Chdir:        os.Chdir,
		RedirectMode: mode,
		Farewell:     farewell,
		Printer: &Printer{
			Stdout: stdout,
			Stderr: stderr,
			Color:  opts.Color,
		},
		Events: opts.Events,
	}
}

// LastStatus returns the status of the most recent dispatch.
func (s *Shell) LastStatus() Status {
	return s.lastStatus
}

// Dispatches returns the number of lines dispatched so far.
func (s *Shell) Dispatches() int {
	return s.dispatches
}

// ExitCode is the process exit code for the current state: 1 if the last
// dispatch failed, 0 otherwise.
func (s *Shell) ExitCode() int {
	if s.lastStatus == StatusFailure {
		return 1
	}
	return 0
}

// Run reads and dispatches lines until the input ends, the user exits, or a
// fatal error occurs. It returns the process exit code.
func (s *Shell) Run(lines LineReader, mode Mode) (int, error) {
	for {
		line, err := lines.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			return s.ExitCode(), nil
		case err != nil:
			return 1, err
		}

		if IsBlank(line) {
			if mode == Batch {
				return 1, nil
			}
			continue
		}

		result, err := s.Dispatch(line)
		if err != nil {
			return 1, err
		}
		if result == Terminate {
			s.Printer.Outf(Cyan, "%s", s.Farewell)
			return 0, nil
		}
	}
}
