// Package shell implements the mysh command interpreter.
//
// A line is processed in the following order:
/**
1. If the line is exactly "exit" the interpreter terminates. Blank lines never
reach the interpreter: the host skips them interactively and rejects them in
batch input.

2. The line is normalized so that every "<", ">" and "|" stands alone, then
split on spaces into tokens.

3. The first token containing "*" is expanded against the filesystem. Only one
token per line is ever expanded.

4. A leading "then" or "else" is checked against the outcome of the previous
line and removed.

5. The built-ins cd, pwd and which run inside the interpreter.

6. Anything else is split into at most two command segments around "|". Each
segment's "<" and ">" operands are removed from its argument list and become
its standard input or output.

7. Each program is resolved to an absolute path, started, and waited for. The
outcome becomes the status consulted by the next "then" or "else".
**/
package shell
