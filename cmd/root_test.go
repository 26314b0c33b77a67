package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	exitCode = 0

	require.NoError(t, rootCmd.Execute())
	return stdout.String(), stderr.String()
}

func TestBuiltinsCommand(t *testing.T) {
	stdout, _ := execute(t, "builtins")

	assert.Equal(t, "builtin:cd\nbuiltin:pwd\nbuiltin:which\nkeyword:else\nkeyword:exit\nkeyword:then\n", stdout)
}

func TestCommandFlag(t *testing.T) {
	_, stderr := execute(t, "--config", "", "-c", "then echo hi")
	assert.Equal(t, "Error: Conditional used without a previous command\n", stderr)
	assert.Equal(t, 1, exitCode)

	stdout, _ := execute(t, "--config", "", "-c", "exit")
	assert.Equal(t, "Now leaving mysh\n", stdout)
	assert.Equal(t, 0, exitCode)
}

func TestEventsReport(t *testing.T) {
	dir := t.TempDir()

	execute(t, "init", dir)
	execute(t, "--config", dir, "-c", "pwd")
	execute(t, "--config", dir, "-c", "nosuchprogram")

	stdout, _ := execute(t, "events", "report", "--config", dir)
	assert.Contains(t, stdout, "log_entries: 6")
	assert.Contains(t, stdout, "resolution: 1")
	assert.Contains(t, stdout, "builtin: 1")
}
