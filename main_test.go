package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runMain(stdin string, args ...string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = realMain(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestMainArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-x"},
		{"--nope"},
		{"-n", "abc"},
		{"-c"},
	} {
		code, out, errs := runMain("", args...)
		require.Equal(t, 2, code, "args %q", args)
		require.Empty(t, out)
		require.True(t, strings.HasPrefix(errs, "head: "), "stderr %q", errs)
		require.Contains(t, errs, "Usage: head")
	}
}

func TestMainUnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	code, out, errs := runMain("", missing)
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.True(t, strings.HasPrefix(errs, "head: cannot open '"+missing+"' for reading"),
		"stderr %q", errs)
	require.NotContains(t, errs, "Usage")
}

func TestMainSuccess(t *testing.T) {
	code, out, errs := runMain("x\ny\n")
	require.Equal(t, 0, code)
	require.Empty(t, out)
	require.Empty(t, errs)

	code, out, errs = runMain("x\ny\n", "-n", "1", "-")
	require.Equal(t, 0, code)
	require.Equal(t, "x\n", out)
	require.Empty(t, errs)
}

func TestMainHelp(t *testing.T) {
	code, out, errs := runMain("", "--help")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "Usage: head"))
	require.Empty(t, errs)
}
