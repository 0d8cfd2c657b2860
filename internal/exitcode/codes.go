// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

// Exit codes reported by the launcher itself. The values follow shell
// conventions, so callers can not tell a failing launcher apart from a shell
// failing to run the same command.
const (
	Success       = 0
	Failure       = 1
	NotExecutable = 126
	NotFound      = 127
)
