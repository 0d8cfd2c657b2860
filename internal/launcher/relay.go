// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// RelayedSignals are passed on to the child.
//
// SIGINT and SIGQUIT are not relayed. The terminal sends them to the whole
// foreground process group, so the child receives them anyway and relaying
// would deliver them twice.
var RelayedSignals = []os.Signal{unix.SIGTERM, unix.SIGHUP}

// NotifySignals are the signals the launcher must catch, so they do not
// terminate it before the child.
var NotifySignals = []os.Signal{
	unix.SIGINT,
	unix.SIGQUIT,
	unix.SIGTERM,
	unix.SIGHUP,
}

func isRelayed(sig os.Signal) bool {
	for _, relayed := range RelayedSignals {
		if sig == relayed {
			return true
		}
	}

	return false
}

// relaySignals sends signals received on signals to process until exited is
// closed. Relay failures do not stop relaying. They are collected and returned
// once exited is closed.
func relaySignals(
	logger *slog.Logger,
	signals <-chan os.Signal,
	exited <-chan struct{},
	process *os.Process,
) error {
	var errs []error

	for {
		select {
		case <-exited:
			return errors.Join(errs...)
		case sig := <-signals:
			if !isRelayed(sig) {
				logger.Debug("Signal not relayed",
					slog.String("signal", sig.String()))

				continue
			}

			logger.Debug("Relaying signal",
				slog.String("signal", sig.String()),
				slog.Int("pid", process.Pid))

			err := process.Signal(sig)
			if err != nil && !errors.Is(err, os.ErrProcessDone) {
				errs = append(errs, fmt.Errorf("relay %s: %w", sig, err))
			}
		}
	}
}
