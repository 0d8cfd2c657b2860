// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launcher runs a single child process that shares the standard
// streams of the launcher and waits for it to terminate.
//
// The child's file descriptors 0, 1 and 2 are the very same files the
// launcher was given, so prompts, colors and line buffering behave as if the
// child was run directly. The launcher does not return before the child
// terminated. While waiting, termination signals received by the launcher are
// relayed to the child.
package launcher
