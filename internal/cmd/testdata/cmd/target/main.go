// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// The target only gets its own path as argument, so the behavior is controlled
// by the environment it inherits from shimrun.
func main() {
	if delay := os.Getenv("TARGET_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			panic("invalid delay")
		}

		time.Sleep(d)
	}

	if os.Getenv("TARGET_KILL") != "" {
		_ = unix.Kill(os.Getpid(), unix.SIGKILL)
	}

	exitCode, err := strconv.Atoi(os.Getenv("TARGET_EXIT_CODE"))
	if err != nil {
		panic("invalid input")
	}

	fmt.Fprintln(os.Stdout, "args:", len(os.Args)-1)
	fmt.Fprintln(os.Stdout, "exit code:", exitCode)

	os.Exit(exitCode)
}
