// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalBase is added to the signal number for children terminated by a
// signal, like shells do.
const signalBase = 128

// ErrNoProcessState is returned if a process state is not available, e.g.
// because the process never ran.
var ErrNoProcessState = errors.New("no process state")

// Error is an exit code that is considered an error.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("non-zero exit code: %d", e)
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// SignalError is returned for processes that did not exit on their own but
// were terminated by a signal. There is no exit code for such processes, so
// [SignalError.Code] returns 128 plus the signal number.
type SignalError struct {
	Signal syscall.Signal
}

func (e SignalError) Error() string {
	name := unix.SignalName(e.Signal)
	if name == "" {
		name = e.Signal.String()
	}

	return "terminated by signal " + name
}

func (SignalError) Is(other error) bool {
	_, ok := other.(SignalError)
	return ok
}

// Code returns the exit code a shell would report for the signal.
func (e SignalError) Code() int {
	return signalBase + int(e.Signal)
}

// From returns an exit code based on the given error and if the error was an
// [Error] or [SignalError].
//
// If the error is nil, the exit code is 0. If the error is an [Error] or
// [SignalError] the exit code is the return value of its Code method.
// Otherwise the exit code is -1.
func From(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	var signalErr SignalError
	if errors.As(err, &signalErr) {
		return signalErr.Code(), true
	}

	return -1, false
}
