// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aibor/shimrun/internal/exitcode"
	"github.com/aibor/shimrun/internal/launcher"
	"github.com/aibor/shimrun/internal/sys"
	"github.com/aibor/shimrun/internal/target"
)

// Set on build.
var (
	// Comma separated interpreter candidates. Empty for executing the script
	// directly.
	interpreters = "python3,python"
	// Script path relative to the shimrun executable.
	script = "main.py"
)

// runSpec describes a single run of the companion program.
type runSpec struct {
	Target   target.Target
	Dir      string
	LookPath target.LookPathFunc
	Signals  <-chan os.Signal
}

func run(
	ctx context.Context,
	logger *slog.Logger,
	spec runSpec,
	stdio launcher.IO,
) error {
	command, err := spec.Target.Resolve(spec.Dir, spec.LookPath)
	if err != nil {
		return fmt.Errorf("resolve target: %w", err)
	}

	logger.Debug("Resolved target", slog.String("command", command.String()))

	companion := launcher.New(
		command,
		launcher.WithSignals(spec.Signals),
		launcher.WithLogger(logger),
	)

	return companion.Run(ctx, stdio) //nolint:wrapcheck
}

func handleRunError(logger *slog.Logger, err error) int {
	if err == nil {
		return exitcode.Success
	}

	// The companion ran and communicated its result via its exit code. It
	// is mirrored without any further message.
	if code, ok := exitcode.From(err); ok {
		logger.Debug("Companion failed",
			slog.Any("error", err),
			slog.Int("exit_code", code))

		return code
	}

	code := exitcode.Failure

	var startErr *launcher.StartError

	switch {
	case errors.As(err, &startErr):
		code = startErr.Code()
	case errors.Is(err, target.ErrNoInterpreter),
		errors.Is(err, fs.ErrNotExist):
		code = exitcode.NotFound
	}

	logger.Error(err.Error())

	return code
}

// Run is the main entry point for the CLI command.
//
// It returns the exit code of the companion program or, if it could not be
// run, an exit code describing the failure. shimrun does not write anything
// to the given stdio on its own, unless logging is enabled by [LogLevelEnv].
func Run(ctx context.Context, stdio launcher.IO, signals <-chan os.Signal) int {
	var logOutput io.Writer = io.Discard
	if stdio.Stderr != nil {
		logOutput = stdio.Stderr
	}

	logger, err := newLogger(logOutput, EnvLogLevel())
	if err != nil {
		logger.Warn("Invalid log level, using default", slog.Any("error", err))
	}

	dir, err := sys.ExecutableDir()
	if err != nil {
		return handleRunError(logger, fmt.Errorf("install dir: %w", err))
	}

	spec := runSpec{
		Target:   target.Parse(interpreters, script),
		Dir:      dir,
		LookPath: exec.LookPath,
		Signals:  signals,
	}

	return handleRunError(logger, run(ctx, logger, spec, stdio))
}
