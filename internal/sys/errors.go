// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrEmptyPath is returned if a path is empty.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNotRegularFile is returned if a path exists but is not a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")
)
