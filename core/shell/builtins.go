package shell

import (
	"fmt"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command run inside the interpreter rather than as a child
// process. args[0] is the builtin's name.
type ShellBuiltin interface {
	Main(s *Shell, args []string) error
}

type ShellBuiltinFunc func(s *Shell, args []string) error

func (f ShellBuiltinFunc) Main(s *Shell, args []string) error {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin
func Cd(s *Shell, args []string) error {
	if len(args) != 2 {
		return usageError("cd <directory name>")
	}

	if err := s.Chdir(args[1]); err != nil {
		return ioError(fmt.Sprintf("Directory does not exist: %s", args[1]), nil)
	}
	fmt.Fprintf(s.Stdout, "Directory changed successfully to %s\n", args[1])
	return nil
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) error {
	if len(args) != 1 {
		return usageError("pwd")
	}

	wd, err := s.Resolver.Getwd()
	if err != nil {
		return ioError("Error getting working directory", causeOf(err))
	}
	fmt.Fprintf(s.Stdout, "Current working directory: %s\n", wd)
	return nil
}

// Which prints the system location of a program. Nothing is printed if the
// program isn't installed.
func Which(s *Shell, args []string) error {
	if len(args) != 2 {
		return usageError("which <program name>")
	}

	if _, ok := AllBuiltins[args[1]]; ok {
		return &Error{
			Kind:   KindSyntax,
			Msg:    fmt.Sprintf("Unexpected argument: %s", args[1]),
			Detail: "Usage: which <program name>",
		}
	}

	if path, err := s.Resolver.ResolveSystem(args[1]); err == nil {
		fmt.Fprintln(s.Stdout, path)
	}
	return nil
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
	AllBuiltins["which"] = ShellBuiltinFunc(Which)
}
