// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/aibor/shimrun/internal/exitcode"
	"github.com/aibor/shimrun/internal/target"
)

// Launcher runs a [target.Command] as child process.
type Launcher struct {
	command target.Command
	signals <-chan os.Signal
	logger  *slog.Logger
}

// Option configures a [Launcher].
type Option func(*Launcher)

// WithSignals sets the channel signals received by the launcher are read
// from. Signals in [RelayedSignals] are sent to the child, all others are
// dropped. Use [os/signal.Notify] with [NotifySignals] to feed the channel.
func WithSignals(signals <-chan os.Signal) Option {
	return func(l *Launcher) {
		l.signals = signals
	}
}

// WithLogger sets the logger for the launcher's own diagnostic messages.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// New creates a new [Launcher] for the given command. Without [WithLogger],
// nothing is logged.
func New(command target.Command, opts ...Option) *Launcher {
	launcher := &Launcher{
		command: command,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(launcher)
	}

	return launcher
}

// Run starts the child and waits for it to terminate.
//
// It returns nil if the child exited with 0, an [exitcode.Error] if it exited
// with any other code, an [exitcode.SignalError] if it was terminated by a
// signal and a [*StartError] if it could not be started at all.
//
// Once the context is done, SIGTERM is sent to the child. Run still waits for
// the child to actually terminate.
func (l *Launcher) Run(ctx context.Context, stdio IO) error {
	cmd := exec.CommandContext(ctx, l.command.Path, l.command.Args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Cancel = func() error {
		l.logger.Debug("Context done, terminating child")
		return cmd.Process.Signal(unix.SIGTERM)
	}

	stdio.apply(cmd)

	l.logger.Debug("Starting child", slog.String("command", cmd.String()))

	unlock := lockThread()
	defer unlock()

	if err := cmd.Start(); err != nil {
		return &StartError{Path: l.command.Path, Err: err}
	}

	l.logger.Debug("Child started", slog.Int("pid", cmd.Process.Pid))

	exited := make(chan struct{})

	var relay errgroup.Group

	relay.Go(func() error {
		return relaySignals(l.logger, l.signals, exited, cmd.Process)
	})

	waitErr := cmd.Wait()

	close(exited)

	if err := relay.Wait(); err != nil {
		l.logger.Warn("Failed to relay signals", slog.Any("error", err))
	}

	if cmd.ProcessState == nil {
		return fmt.Errorf("wait: %w", waitErr)
	}

	l.logger.Debug("Child terminated",
		slog.String("state", cmd.ProcessState.String()))

	return exitcode.FromState(cmd.ProcessState)
}
