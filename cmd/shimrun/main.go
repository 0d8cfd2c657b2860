// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command shimrun runs the companion program installed next to it and exits
// with the companion's exit code.
//
// The companion shares shimrun's stdin, stdout and stderr. shimrun itself does
// not take any arguments and does not print anything, unless SHIMRUN_LOG_LEVEL
// is set.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/aibor/shimrun/internal/cmd"
	"github.com/aibor/shimrun/internal/launcher"
)

func main() {
	// Catch termination signals, so shimrun keeps waiting for the companion
	// instead of terminating first.
	signals := make(chan os.Signal, len(launcher.NotifySignals))
	signal.Notify(signals, launcher.NotifySignals...)

	os.Exit(cmd.Run(context.Background(), launcher.StdIO(), signals))
}
