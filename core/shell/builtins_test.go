package shell

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllBuiltins(t *testing.T) {
	var names []string
	for name, builtin := range AllBuiltins {
		require.NotNil(t, builtin, name)
		names = append(names, name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{"cd", "pwd", "which"}, names)
}

func TestCd(t *testing.T) {
	ts := newTestShell(t)
	sub := filepath.Join(ts.dir, "sub")
	ts.writeFile(t, "file.txt", "", 0644)
	require.NoError(t, os.Mkdir(sub, 0755))

	assert.Equal(t, Success, ts.dispatch(t, "cd sub"))
	assert.Equal(t, "Directory changed successfully to sub\n", ts.stdout.String())
	wd, err := ts.Resolver.Getwd()
	require.NoError(t, err)
	assert.Equal(t, sub, wd)

	ts.stdout.Reset()
	assert.Equal(t, Success, ts.dispatch(t, "cd .."))
	ts.stdout.Reset()
	assert.Equal(t, Success, ts.dispatch(t, "pwd"))
	assert.Equal(t, "Current working directory: "+ts.dir+"\n", ts.stdout.String())

	assert.Equal(t, Failure, ts.dispatch(t, "cd nowhere"))
	assert.Equal(t, "Error: Directory does not exist: nowhere\n", ts.stderr.String())
	wd, err = ts.Resolver.Getwd()
	require.NoError(t, err)
	assert.Equal(t, ts.dir, wd)

	ts.stderr.Reset()
	assert.Equal(t, Failure, ts.dispatch(t, "cd file.txt"))
	assert.Equal(t, "Error: Directory does not exist: file.txt\n", ts.stderr.String())
}

func TestBuiltins_arguments(t *testing.T) {
	cases := map[string]string{
		"cd":          "Error: Unexpected number of arguments\nUsage: cd <directory name>\n",
		"cd a b":      "Error: Unexpected number of arguments\nUsage: cd <directory name>\n",
		"pwd -L":      "Error: Unexpected number of arguments\nUsage: pwd\n",
		"which":       "Error: Unexpected number of arguments\nUsage: which <program name>\n",
		"which a b":   "Error: Unexpected number of arguments\nUsage: which <program name>\n",
		"which cd":    "Error: Unexpected argument: cd\nUsage: which <program name>\n",
		"which which": "Error: Unexpected argument: which\nUsage: which <program name>\n",
		"cd a | wc":   "Error: Unexpected number of arguments\nUsage: cd <directory name>\n",
	}

	for line, want := range cases {
		t.Run(line, func(t *testing.T) {
			ts := newTestShell(t)

			assert.Equal(t, Failure, ts.dispatch(t, line))
			assert.Equal(t, want, ts.stderr.String())
			assert.Empty(t, ts.stdout.String())
		})
	}
}

func TestWhich(t *testing.T) {
	ts := newTestShell(t, "sh")
	ts.writeFile(t, "local", "#!/bin/sh\n", 0755)

	shPath, err := ts.Resolver.ResolveSystem("sh")
	require.NoError(t, err)

	assert.Equal(t, Success, ts.dispatch(t, "which sh"))
	assert.Equal(t, shPath+"\n", ts.stdout.String())

	// The working directory isn't searched and a miss prints nothing.
	ts.stdout.Reset()
	assert.Equal(t, Success, ts.dispatch(t, "which local"))
	assert.Equal(t, Success, ts.dispatch(t, "which nosuchprogram"))
	assert.Empty(t, ts.stdout.String())
	assert.Empty(t, ts.stderr.String())
}
