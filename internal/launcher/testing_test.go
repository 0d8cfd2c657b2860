// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/shimrun/internal/launcher"
	"github.com/aibor/shimrun/internal/target"
	"github.com/stretchr/testify/require"
)

// shellTarget writes the given script into a temporary directory and returns
// the command for running it with /bin/sh, like an interpreter runs the
// companion script.
func shellTarget(tb testing.TB, script string) target.Command {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "target.sh")

	err := os.WriteFile(path, []byte(script+"\n"), 0o600)
	require.NoError(tb, err)

	return target.Command{
		Path: "/bin/sh",
		Args: []string{path},
	}
}

type testIO struct {
	launcher.IO
}

// newTestIO creates files for the standard streams. Stdin contains the given
// input.
func newTestIO(tb testing.TB, input string) testIO {
	tb.Helper()

	dir := tb.TempDir()

	open := func(name string, content string) *os.File {
		path := filepath.Join(dir, name)

		err := os.WriteFile(path, []byte(content), 0o600)
		require.NoError(tb, err)

		file, err := os.OpenFile(path, os.O_RDWR, 0)
		require.NoError(tb, err)

		tb.Cleanup(func() { _ = file.Close() })

		return file
	}

	return testIO{
		IO: launcher.IO{
			Stdin:  open("stdin", input),
			Stdout: open("stdout", ""),
			Stderr: open("stderr", ""),
		},
	}
}

func (s testIO) stdout(tb testing.TB) string {
	tb.Helper()
	return readFile(tb, s.Stdout)
}

func (s testIO) stderr(tb testing.TB) string {
	tb.Helper()
	return readFile(tb, s.Stderr)
}

func readFile(tb testing.TB, file *os.File) string {
	tb.Helper()

	content, err := os.ReadFile(file.Name())
	require.NoError(tb, err)

	return string(content)
}
