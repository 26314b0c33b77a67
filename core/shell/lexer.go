package shell

import (
	"strings"
	"unicode"
)

const (
	OpRedirectIn  = "<"
	OpRedirectOut = ">"
	OpPipe        = "|"
)

// IsOperator reports whether tok is one of "<", ">" or "|".
func IsOperator(tok string) bool {
	return tok == OpRedirectIn || tok == OpRedirectOut || tok == OpPipe
}

func isRedirect(tok string) bool {
	return tok == OpRedirectIn || tok == OpRedirectOut
}

// IsBlank reports whether the line is empty or contains only whitespace.
func IsBlank(line string) bool {
	return strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// Normalize surrounds every operator character with a single space on each
// side so "foo>bar.txt" becomes "foo > bar.txt". All other bytes are copied
// unchanged, valid UTF-8 or not.
func Normalize(line string) string {
	var sb strings.Builder
	sb.Grow(len(line) + 8)
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '<', '>', '|':
			sb.WriteByte(' ')
			sb.WriteByte(c)
			sb.WriteByte(' ')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Tokenize normalizes the line and splits it on runs of spaces. Only the space
// character separates tokens.
func Tokenize(line string) []string {
	var tokens []string
	for _, field := range strings.Split(Normalize(line), " ") {
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func hasRedirect(tokens []string) bool {
	for _, tok := range tokens {
		if isRedirect(tok) {
			return true
		}
	}
	return false
}

func hasOperator(tokens []string) bool {
	for _, tok := range tokens {
		if IsOperator(tok) {
			return true
		}
	}
	return false
}
