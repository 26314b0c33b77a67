package shell

import (
	"time"

	"github.com/josephlewis42/mysh/core/logger"
)

// Result is what the host loop does after a line.
type Result int

const (
	Success Result = iota
	Failure
	Terminate
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// ExitLine is the exact line that ends the interpreter.
const ExitLine = "exit"

const (
	routeBuiltin  = "builtin"
	routeExec     = "exec"
	routeRedirect = "redirect"
	routePipeline = "pipeline"
)

// dispatch carries the state of one line through the stages.
type dispatch struct {
	line   string
	tokens []string
	route  string
	paths  []string
	ec     execContext
}

// Dispatch runs one line and updates the last status. Failures are reported
// on the shell's error stream. The returned error is set only when the
// interpreter can't continue.
func (s *Shell) Dispatch(line string) (Result, error) {
	if line == ExitLine {
		return Terminate, nil
	}
	if IsBlank(line) {
		return Failure, nil
	}

	d := &dispatch{line: line}
	started := time.Now()
	status, err := s.dispatch(d)
	if err != nil {
		s.Printer.Error(err)
	}
	s.lastStatus = status
	s.dispatches++
	s.record(d, status, err, time.Since(started))

	if IsFatal(err) {
		return Failure, err
	}
	if status == StatusSuccess {
		return Success, nil
	}
	return Failure, nil
}

func (s *Shell) dispatch(d *dispatch) (Status, error) {
	wd, err := s.Resolver.Getwd()
	if err != nil {
		return StatusFailure, ioError("Error getting working directory", err)
	}
	d.ec = execContext{
		stdin:  s.Stdin,
		stdout: s.Stdout,
		stderr: s.Stderr,
		dir:    wd,
	}

	d.tokens = Tokenize(d.line)

	tokens, err := s.Resolver.ExpandWildcard(d.tokens)
	if err != nil {
		return StatusFailure, err
	}
	d.tokens = tokens

	tokens, err = StripConditional(tokens, s.lastStatus)
	if err != nil {
		return StatusFailure, err
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok && !hasRedirect(tokens) {
		d.route = routeBuiltin
		if err := builtin.Main(s, tokens); err != nil {
			return StatusFailure, err
		}
		return StatusSuccess, nil
	}

	if !hasOperator(tokens) {
		d.route = routeExec
		return s.execPlain(d, tokens)
	}

	return s.scanOperators(d, tokens)
}

// scanOperators validates operator placement and hands the line to the
// pipeline or redirection engine. A pipe takes precedence over redirections.
func (s *Shell) scanOperators(d *dispatch, tokens []string) (Status, error) {
	if err := ValidateOperators(tokens); err != nil {
		return StatusFailure, err
	}

	segments, err := SplitPipeline(tokens)
	if err != nil {
		return StatusFailure, err
	}

	if len(segments) == 2 {
		d.route = routePipeline
		return s.execPipeline(d, segments[0], segments[1])
	}

	d.route = routeRedirect
	return s.execRedirect(d, segments[0])
}

func (s *Shell) record(d *dispatch, status Status, err error, elapsed time.Duration) {
	if s.Events == nil {
		return
	}

	event := &logger.Dispatch{
		Line:           d.line,
		Tokens:         d.tokens,
		Route:          d.route,
		ResolvedPaths:  d.paths,
		Status:         status.String(),
		DurationMicros: elapsed.Microseconds(),
	}
	if err != nil {
		event.ErrorKind = KindOf(err).String()
		event.Error = err.Error()
	}

	if err := s.Events.Record(event); err != nil {
		s.Printer.Warnf("couldn't record event: %v\n", err)
	}
}
