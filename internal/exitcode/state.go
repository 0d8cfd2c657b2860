// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"os"
	"syscall"
)

// FromState returns the error matching the given state of a terminated
// process.
//
// It is nil if the process exited with 0, an [Error] if it exited with any
// other code and a [SignalError] if it was terminated by a signal.
func FromState(state *os.ProcessState) error {
	if state == nil {
		return ErrNoProcessState
	}

	status, ok := state.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return SignalError{Signal: status.Signal()}
	}

	if code := state.ExitCode(); code != 0 {
		return Error(code)
	}

	return nil
}
