package main

import (
	"runtime"

	"github.com/bnema/splitter/internal/cli/cmd"
	"github.com/bnema/splitter/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Shows help if no subcommand
	cmd.Execute()
}
