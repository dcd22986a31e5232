//go:build linux || darwin

package main

import (
	"os"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// enableCrashForensics raises the core dump limit when SPLITTER_CORE_DUMPS=1
// so a crash inside the TUI leaves something to inspect.
func enableCrashForensics() {
	if os.Getenv("SPLITTER_CORE_DUMPS") != "1" {
		return
	}
	debug.SetTraceback("crash")

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		return
	}
	if limit.Cur >= limit.Max {
		return
	}
	limit.Cur = limit.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}
