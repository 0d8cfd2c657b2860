// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger creates the logger for shimrun's own messages.
//
// With an empty level, all messages are discarded, so the only output is the
// one of the companion program. Otherwise the level is parsed like
// [slog.Level.UnmarshalText] does. An invalid level falls back to
// [slog.LevelWarn] and is returned as error along with the logger.
func newLogger(writer io.Writer, level string) (*slog.Logger, error) {
	if level == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	var (
		logLevel slog.Level
		err      error
	)

	if unmarshalErr := logLevel.UnmarshalText([]byte(level)); unmarshalErr != nil {
		logLevel = slog.LevelWarn
		err = fmt.Errorf("log level %q: %w", level, unmarshalErr)
	}

	logger := slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: logLevel,
		},
	))

	return logger, err
}
