// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode translates the termination state of a child process into
// errors and back into the exit code the launcher terminates with.
package exitcode
