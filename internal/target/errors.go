// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target

import "errors"

var (
	// ErrNoInterpreter is returned if none of the interpreter candidates is
	// found.
	ErrNoInterpreter = errors.New("no interpreter found")

	// ErrEmptyScript is returned if the target has no script path.
	ErrEmptyScript = errors.New("script path must not be empty")
)
