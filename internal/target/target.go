// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aibor/shimrun/internal/sys"
)

// LookPathFunc searches for an executable file, like [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// Target describes the companion program.
type Target struct {
	// Interpreters are candidates for running the script, in order of
	// preference. Names without a slash are searched in PATH. If empty, the
	// script is executed directly.
	Interpreters []string
	// Path of the script. Relative paths are relative to the directory the
	// launcher is installed in.
	Script string
}

// Parse creates a [Target] from a comma separated list of interpreters and a
// script path. Empty list elements are skipped.
func Parse(interpreters, script string) Target {
	target := Target{
		Script: strings.TrimSpace(script),
	}

	for _, name := range strings.Split(interpreters, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			target.Interpreters = append(target.Interpreters, name)
		}
	}

	return target
}

// Resolve returns the [Command] for running the target.
//
// The script path is joined to dir and must be an existing regular file. The
// first interpreter candidate found by lookPath is used. In both modes, the
// script path is the only argument passed to the child.
func (t Target) Resolve(dir string, lookPath LookPathFunc) (Command, error) {
	if t.Script == "" {
		return Command{}, ErrEmptyScript
	}

	script, err := sys.JoinPath(dir, t.Script)
	if err != nil {
		return Command{}, fmt.Errorf("script path: %w", err)
	}

	if err := sys.ValidateFilePath(script); err != nil {
		return Command{}, fmt.Errorf("script %s: %w", script, err)
	}

	if len(t.Interpreters) == 0 {
		return Command{Path: script, Args: []string{script}}, nil
	}

	interpreter, err := t.lookupInterpreter(lookPath)
	if err != nil {
		return Command{}, err
	}

	return Command{Path: interpreter, Args: []string{script}}, nil
}

func (t Target) lookupInterpreter(lookPath LookPathFunc) (string, error) {
	errs := make([]error, 0, len(t.Interpreters))

	for _, name := range t.Interpreters {
		path, err := lookPath(name)
		if err == nil {
			return path, nil
		}

		errs = append(errs, err)
	}

	return "", fmt.Errorf("%w: %w", ErrNoInterpreter, errors.Join(errs...))
}
