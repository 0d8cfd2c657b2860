// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"os"
	"os/exec"
)

// IO provides the standard streams for the child.
//
// The fields are files, not arbitrary readers and writers, so they are handed
// to the child as they are and no pipes or copying goroutines are involved.
// Nil files are connected to the null device.
type IO struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// StdIO returns the standard streams of the current process.
func StdIO() IO {
	return IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// apply sets the streams on the given command. Nil files are skipped, as a
// typed nil would not be recognized as missing by [exec.Cmd].
func (s IO) apply(cmd *exec.Cmd) {
	if s.Stdin != nil {
		cmd.Stdin = s.Stdin
	}

	if s.Stdout != nil {
		cmd.Stdout = s.Stdout
	}

	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}
}
