// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target

import "strings"

// Command is a resolved target ready to be run.
type Command struct {
	// Path of the executable.
	Path string
	// Args are passed to the executable, without the program name.
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}
