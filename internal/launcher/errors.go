// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"

	"github.com/aibor/shimrun/internal/exitcode"
)

// StartError wraps any error that prevented the child from being started.
type StartError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return "start " + e.Path + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}

// Code returns the exit code a shell would return for the failure:
// [exitcode.NotFound] if the executable does not exist and
// [exitcode.NotExecutable] for any other reason. If the child was not started
// because the context was already done, it is [exitcode.Failure].
func (e *StartError) Code() int {
	switch {
	case errors.Is(e.Err, context.Canceled),
		errors.Is(e.Err, context.DeadlineExceeded):
		return exitcode.Failure
	case errors.Is(e.Err, fs.ErrNotExist), errors.Is(e.Err, exec.ErrNotFound):
		return exitcode.NotFound
	}

	return exitcode.NotExecutable
}
