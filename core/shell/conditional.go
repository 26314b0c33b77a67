package shell

// Status is the outcome of the previous completed dispatch.
type Status int

const (
	StatusUnknown Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

const (
	KeywordThen = "then"
	KeywordElse = "else"
)

// StripConditional removes a leading "then" or "else" from tokens if the
// previous status allows the rest of the line to run. Tokens without a leading
// conditional are returned unchanged.
func StripConditional(tokens []string, last Status) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	var want Status
	switch tokens[0] {
	case KeywordThen:
		want = StatusSuccess
	case KeywordElse:
		want = StatusFailure
	default:
		return tokens, nil
	}

	switch {
	case last == StatusUnknown:
		return nil, conditionalErrorf("Conditional used without a previous command")
	case last != want && want == StatusSuccess:
		return nil, &Error{
			Kind:   KindConditional,
			Msg:    "Previous command failed",
			Detail: "Cannot execute 'then' conditional",
		}
	case last != want:
		return nil, &Error{
			Kind:   KindConditional,
			Msg:    "Previous command succeeded",
			Detail: "Cannot execute 'else' conditional",
		}
	case len(tokens) == 1:
		return nil, conditionalErrorf("Unexpected number of arguments")
	}

	return tokens[1:], nil
}
