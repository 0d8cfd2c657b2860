// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for shimrun. It resolves the
// companion program, runs it and maps the outcome to the exit code shimrun
// terminates with.
package cmd
