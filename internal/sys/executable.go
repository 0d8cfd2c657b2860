// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory the running executable is installed in.
//
// Symlinks are resolved, so a symlink to the executable placed somewhere else
// in the file system, e.g. in a bin directory in PATH, still yields the
// directory of the actual executable file.
func ExecutableDir() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("own path: %w", err)
	}

	self, err = filepath.EvalSymlinks(self)
	if err != nil {
		return "", fmt.Errorf("resolve own path: %w", err)
	}

	return filepath.Dir(self), nil
}
