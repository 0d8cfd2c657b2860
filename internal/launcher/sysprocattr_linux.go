// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package launcher

import (
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"
)

// sysProcAttr makes the kernel terminate the child if the launcher dies
// without waiting for it, e.g. when killed by SIGKILL.
//
// The child stays in the launcher's process group, so it remains in the
// terminal's foreground group and can read from the terminal.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Pdeathsig: unix.SIGTERM,
	}
}

// lockThread pins the calling goroutine to its OS thread until the returned
// function is called. The parent death signal fires when the thread that
// forked the child exits, not the process (golang/go#27505), so the thread
// must not be retired while the child runs.
func lockThread() func() {
	runtime.LockOSThread()

	return runtime.UnlockOSThread
}
