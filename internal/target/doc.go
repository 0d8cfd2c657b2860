// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package target resolves the companion program run by the launcher.
//
// The companion is a script (or executable) installed relative to the
// launcher's own executable, so its location does not depend on the caller's
// working directory. If interpreters are given, the first one found in PATH
// runs the script, otherwise the script is executed directly.
package target
