// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

// LogLevelEnv is the environment variable for enabling shimrun's own log
// output. It is never consulted for the companion program, which inherits the
// environment as is.
const LogLevelEnv = "SHIMRUN_LOG_LEVEL"

// EnvLogLevel returns the log level from the environment. It is empty if
// logging is not enabled.
func EnvLogLevel() string {
	return strings.TrimSpace(os.Getenv(LogLevelEnv))
}
