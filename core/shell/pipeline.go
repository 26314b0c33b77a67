package shell

import (
	"os"
)

// execPipeline connects the output of left to the input of right through an
// anonymous pipe. Both programs are resolved and their files opened before
// either is started. The status is the status of right.
func (s *Shell) execPipeline(d *dispatch, left, right Segment) (Status, error) {
	leftArgv, err := s.resolveSegment(d, left)
	if err != nil {
		return StatusFailure, err
	}
	rightArgv, err := s.resolveSegment(d, right)
	if err != nil {
		return StatusFailure, err
	}

	leftEc, rightEc := d.ec, d.ec
	closeLeft, err := s.redirect(&leftEc, left)
	defer closeLeft()
	if err != nil {
		return StatusFailure, err
	}
	closeRight, err := s.redirect(&rightEc, right)
	defer closeRight()
	if err != nil {
		return StatusFailure, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return StatusFailure, ioError("Error creating pipe", err)
	}
	leftEc.stdout = pw
	rightEc.stdin = pr

	writer, reader := leftEc.command(leftArgv), rightEc.command(rightArgv)

	writerOK, err := start(writer)
	readerOK := false
	if err == nil {
		readerOK, err = start(reader)
	}

	// The reader only sees EOF once every copy of the write end is closed.
	pr.Close()
	pw.Close()

	firstErr := err
	if writerOK {
		// The writer's status is ignored, it is often killed by SIGPIPE once
		// the reader stops reading.
		if _, err := exitStatus(writer.Wait()); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	status := StatusFailure
	if readerOK {
		var err error
		status, err = exitStatus(reader.Wait())
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return StatusFailure, firstErr
	}
	return status, nil
}
