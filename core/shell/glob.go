package shell

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const wildcard = "*"

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)

// ExpandWildcard expands the first token containing "*" and returns the new
// token sequence. Tokens after the first wildcard token are never expanded,
// even if they contain "*" themselves.
func (r *Resolver) ExpandWildcard(tokens []string) ([]string, error) {
	for i, tok := range tokens {
		if !strings.Contains(tok, wildcard) {
			continue
		}

		if err := checkWildcard(tok); err != nil {
			return tokens, err
		}

		matches, err := r.Glob(tok)
		if err != nil {
			return tokens, err
		}
		if len(matches) == 0 {
			return tokens, nil
		}

		out := make([]string, 0, len(tokens)+len(matches)-1)
		out = append(out, tokens[:i]...)
		out = append(out, matches...)
		out = append(out, tokens[i+1:]...)
		return out, nil
	}

	return tokens, nil
}

func checkWildcard(tok string) error {
	if strings.Count(tok, wildcard) > 1 {
		return &Error{
			Kind:   KindSyntax,
			Msg:    "Improper use of '*' symbol",
			Detail: "Only one '*' symbol is permitted per file or path name",
		}
	}

	if strings.LastIndex(tok, "/") > strings.Index(tok, wildcard) {
		return &Error{
			Kind:   KindSyntax,
			Msg:    "Improper use of '*' symbol",
			Detail: "In path names, the '*' symbol can only be used in the last section",
		}
	}

	return nil
}

// Glob matches the final segment of pattern against the filesystem. Matches
// keep the directory prefix exactly as written in the pattern. A bare pattern
// with no match in the working directory is retried in each system directory,
// stopping at the first one with a match.
func (r *Resolver) Glob(pattern string) ([]string, error) {
	slash := strings.LastIndex(pattern, "/")
	prefix, base := pattern[:slash+1], pattern[slash+1:]

	dir := prefix
	if dir == "" {
		dir = "."
	}
	absDir, err := r.Abs(dir)
	if err != nil {
		return nil, err
	}

	matches, err := r.globDir(absDir, prefix, base)
	if err != nil || len(matches) > 0 || prefix != "" {
		return matches, err
	}

	for _, sysDir := range r.Dirs {
		matches, err := r.globDir(sysDir, "", base)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches, nil
		}
	}

	return nil, nil
}

func (r *Resolver) globDir(absDir, prefix, base string) ([]string, error) {
	if strings.ContainsAny(absDir, "*?[") {
		absDir = globEscaper.Replace(absDir)
	}

	found, err := afero.Glob(r.Fs, filepath.Join(absDir, base))
	if err == filepath.ErrBadPattern {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []string
	for _, match := range found {
		name := filepath.Base(match)
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if prefix == "" && IsOperator(name) {
			// Keep files named "<", ">" or "|" from reading as operators.
			name = "./" + name
		}
		out = append(out, prefix+name)
	}

	return out, nil
}
