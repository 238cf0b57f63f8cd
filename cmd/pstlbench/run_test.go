package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRunAll(t *testing.T) {
	out := execute(t, "run", "--n", "5000", "--rounds", "1")
	for _, a := range algorithms {
		require.Contains(t, out, a.name)
	}
	require.Contains(t, out, "par_unseq")
}

func TestRunSelected(t *testing.T) {
	out := execute(t, "run", "--algo", "sort,merge", "--policy", "seq,par", "--n", "3000", "--threshold", "4")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.NotContains(t, out, "unseq")
}

func TestRunRejectsUnknownNames(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--algo", "bogosort"},
		{"run", "--policy", "fast"},
		{"run", "--n", "3"},
	} {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		require.Error(t, cmd.Execute(), "%v", args)
	}
}

func TestCaps(t *testing.T) {
	out := execute(t, "caps")
	require.Contains(t, out, "workers:")
	require.Contains(t, out, "policy par_unseq:")
}
