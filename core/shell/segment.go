package shell

// Segment is one program invocation inside a line: its argument vector and the
// files named by "<" and ">", if any.
type Segment struct {
	Argv   []string
	Stdin  string
	Stdout string
}

// Name returns the program name as typed.
func (s Segment) Name() string {
	return s.Argv[0]
}

// ValidateOperators checks operator placement over the whole token sequence.
// An operator may not start or end the line, may not follow another operator,
// and at most one pipe is allowed.
func ValidateOperators(tokens []string) error {
	pipes := 0
	for _, tok := range tokens {
		if tok == OpPipe {
			pipes++
		}
	}
	if pipes > 1 {
		return &Error{
			Kind:   KindSyntax,
			Msg:    "Improper use of pipe command",
			Detail: "Only one '|' is permitted per line",
		}
	}

	for i, tok := range tokens {
		if !IsOperator(tok) {
			continue
		}

		misplaced := i == 0 ||
			i == len(tokens)-1 ||
			IsOperator(tokens[i-1]) ||
			IsOperator(tokens[i+1])
		if misplaced {
			return misplacedOperator(tok)
		}
	}

	return nil
}

func misplacedOperator(tok string) *Error {
	if tok == OpPipe {
		return syntaxErrorf("Improper use of pipe command")
	}
	return syntaxErrorf("Improper use of redirection symbol")
}

// SplitPipeline cuts tokens into one segment per side of "|". The left side of
// a pipe may only redirect its input and the right side only its output.
func SplitPipeline(tokens []string) ([]Segment, error) {
	var segments []Segment

	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i < len(tokens) && tokens[i] != OpPipe {
			continue
		}

		seg, err := BuildSegment(tokens[start:i])
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		start = i + 1
	}

	if len(segments) == 2 {
		if segments[0].Stdout != "" {
			return nil, &Error{
				Kind:   KindSyntax,
				Msg:    "Improper use of pipe command",
				Detail: "The command before '|' cannot redirect its output",
			}
		}
		if segments[1].Stdin != "" {
			return nil, &Error{
				Kind:   KindSyntax,
				Msg:    "Improper use of pipe command",
				Detail: "The command after '|' cannot redirect its input",
			}
		}
	}

	return segments, nil
}

// BuildSegment turns a pipe-free token run into a Segment. Each "<" or ">"
// consumes the token after it as a filename; everything else, in order, forms
// the argument vector.
func BuildSegment(tokens []string) (Segment, error) {
	var seg Segment

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !isRedirect(tok) {
			seg.Argv = append(seg.Argv, tok)
			continue
		}

		if i+1 >= len(tokens) || IsOperator(tokens[i+1]) {
			return Segment{}, syntaxErrorf("Improper use of redirection symbol")
		}

		target := &seg.Stdout
		if tok == OpRedirectIn {
			target = &seg.Stdin
		}
		if *target != "" {
			return Segment{}, &Error{
				Kind:   KindSyntax,
				Msg:    "Improper use of redirection symbol",
				Detail: "Only one '<' and one '>' are permitted per command",
			}
		}
		*target = tokens[i+1]
		i++
	}

	if len(seg.Argv) == 0 {
		return Segment{}, syntaxErrorf("Improper use of redirection symbol")
	}

	return seg, nil
}
