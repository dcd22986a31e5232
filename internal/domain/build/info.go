// Package build describes the binary: version stamps and project metadata.
package build

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const devVersion = "dev"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether the binary was built without a release version.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == devVersion
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String formats the info for `splitter --version`.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = devVersion
	}
	parts := []string{version}
	if c := i.ShortCommit(); c != "" && c != "unknown" {
		parts = append(parts, c)
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		parts = append(parts, i.BuildDate)
	}
	if len(parts) == 1 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(parts[1:], ", "))
}

// WithVCS fills an unset commit and build date from the VCS stamps the Go
// toolchain embeds in `go build` binaries.
func (i Info) WithVCS() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" || i.Commit == "unknown" {
				i.Commit = s.Value
			}
		case "vcs.time":
			if i.BuildDate == "" || i.BuildDate == "unknown" {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/splitter"
}
