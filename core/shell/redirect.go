package shell

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// DefaultRedirectMode is the permission given to files created by ">".
const DefaultRedirectMode os.FileMode = 0640

// resolveSegment resolves the segment's program and returns a copy of its
// argument vector with the absolute path in front.
func (s *Shell) resolveSegment(d *dispatch, seg Segment) ([]string, error) {
	path, err := s.Resolver.Resolve(seg.Name())
	if err != nil {
		return nil, resolutionError(seg.Name())
	}
	d.paths = append(d.paths, path)

	argv := append([]string(nil), seg.Argv...)
	argv[0] = path
	return argv, nil
}

func (s *Shell) openInput(name string) (afero.File, error) {
	path, err := s.Resolver.Abs(name)
	if err != nil {
		return nil, ioError(fmt.Sprintf("cannot open %s", name), causeOf(err))
	}
	f, err := s.Resolver.Fs.Open(path)
	if err != nil {
		return nil, ioError(fmt.Sprintf("cannot open %s", name), causeOf(err))
	}
	return f, nil
}

func (s *Shell) openOutput(name string) (afero.File, error) {
	path, err := s.Resolver.Abs(name)
	if err != nil {
		return nil, ioError(fmt.Sprintf("cannot open %s", name), causeOf(err))
	}
	f, err := s.Resolver.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.RedirectMode)
	if err != nil {
		return nil, ioError(fmt.Sprintf("cannot open %s", name), causeOf(err))
	}
	return f, nil
}

// redirect points ec at the files named by seg. The returned closer must be
// called once the programs using ec have exited, even when err is non-nil.
func (s *Shell) redirect(ec *execContext, seg Segment) (func(), error) {
	var opened []afero.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if seg.Stdin != "" {
		f, err := s.openInput(seg.Stdin)
		if err != nil {
			return closeAll, err
		}
		opened = append(opened, f)
		ec.stdin = f
	}

	if seg.Stdout != "" {
		f, err := s.openOutput(seg.Stdout)
		if err != nil {
			return closeAll, err
		}
		opened = append(opened, f)
		ec.stdout = f
	}

	return closeAll, nil
}

// execRedirect runs a single segment with its redirections applied.
func (s *Shell) execRedirect(d *dispatch, seg Segment) (Status, error) {
	argv, err := s.resolveSegment(d, seg)
	if err != nil {
		return StatusFailure, err
	}

	ec := d.ec
	closeFiles, err := s.redirect(&ec, seg)
	defer closeFiles()
	if err != nil {
		return StatusFailure, err
	}

	return run(ec, argv)
}
