package shell

import (
	"bufio"
	"io"

	"github.com/abiosoft/readline"
)

// DefaultPrompt is shown before each interactive line.
const DefaultPrompt = "mysh> "

// LineReader supplies lines without their trailing newline. It returns io.EOF
// once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// PromptReader reads lines from a terminal with editing and history.
type PromptReader struct {
	rl *readline.Instance
}

var _ LineReader = (*PromptReader)(nil)

// NewPromptReader creates an interactive reader. isTerminal reports whether
// stdin is a terminal; line editing is disabled when it returns false.
func NewPromptReader(prompt string, stdin io.Reader, stdout, stderr io.Writer, isTerminal func() bool) (*PromptReader, error) {
	cfg := &readline.Config{
		Prompt:         prompt,
		Stdin:          readline.NewCancelableStdin(stdin),
		Stdout:         stdout,
		Stderr:         stderr,
		FuncIsTerminal: isTerminal,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &PromptReader{rl: rl}, nil
}

// ReadLine implements LineReader. An interrupt discards the line being typed
// and yields an empty one.
func (p *PromptReader) ReadLine() (string, error) {
	line, err := p.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", nil
	}
	return line, err
}

func (p *PromptReader) Close() error {
	return p.rl.Close()
}

// BatchReader reads newline separated lines from a file or pipe.
type BatchReader struct {
	scanner *bufio.Scanner
}

var _ LineReader = (*BatchReader)(nil)

func NewBatchReader(r io.Reader) *BatchReader {
	return &BatchReader{scanner: bufio.NewScanner(r)}
}

// ReadLine implements LineReader.
func (b *BatchReader) ReadLine() (string, error) {
	if b.scanner.Scan() {
		return b.scanner.Text(), nil
	}
	if err := b.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
