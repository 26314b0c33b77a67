package shell

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"golang.org/x/sys/unix"
)

// execContext holds the streams and directory handed to the programs of one
// dispatch. Redirections swap a stream here; the shell's own streams are never
// touched.
type execContext struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	dir    string
}

func (ec execContext) command(argv []string) *exec.Cmd {
	return &exec.Cmd{
		Path:   argv[0],
		Args:   argv,
		Dir:    ec.dir,
		Stdin:  ec.stdin,
		Stdout: ec.stdout,
		Stderr: ec.stderr,
	}
}

// start launches cmd. A program that cannot be executed is reported on the
// command's own error stream and start returns false with no error; only a
// failure to create a process at all is returned.
func start(cmd *exec.Cmd) (bool, error) {
	err := cmd.Start()
	if err == nil {
		return true, nil
	}

	if isForkFailure(err) {
		return false, &Error{Kind: KindProcess, Msg: "Error forking", Err: err}
	}

	if cmd.Stderr != nil {
		fmt.Fprintf(cmd.Stderr, "%s: %v\n", cmd.Path, causeOf(err))
	}
	return false, nil
}

func isForkFailure(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM)
}

// exitStatus maps the result of Wait onto a Status.
func exitStatus(err error) (Status, error) {
	if err == nil {
		return StatusSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return StatusFailure, nil
	}
	return StatusFailure, ioError("Error waiting for child", err)
}

// run starts a single program and waits for it.
func run(ec execContext, argv []string) (Status, error) {
	cmd := ec.command(argv)
	ok, err := start(cmd)
	if !ok {
		return StatusFailure, err
	}
	return exitStatus(cmd.Wait())
}

// causeOf strips the operation and path from filesystem errors so messages
// don't repeat the name the user typed.
func causeOf(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// execPlain runs a line with no operators.
func (s *Shell) execPlain(d *dispatch, tokens []string) (Status, error) {
	argv := append([]string(nil), tokens...)

	path, err := s.Resolver.Resolve(argv[0])
	if err != nil {
		return StatusFailure, resolutionError(argv[0])
	}

	if argv[0] != "echo" {
		s.rewriteFirstPath(argv)
	}
	argv[0] = path
	d.paths = append(d.paths, path)

	return run(d.ec, argv)
}

// rewriteFirstPath replaces the first argument that names an existing file
// with its absolute path.
func (s *Shell) rewriteFirstPath(argv []string) {
	for i := 1; i < len(argv); i++ {
		if path, err := s.Resolver.Resolve(argv[i]); err == nil {
			argv[i] = path
			return
		}
	}
}
