// Package version reports the witui build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/witui/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/witui/internal/version.Commit=abc123"
//
// Otherwise they come from the VCS stamp in the build info, or fall back
// to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			Version, Commit = fromBuildInfo(info, Version, Commit)
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit is empty from the VCS
// settings recorded by the go tool.
func fromBuildInfo(info *debug.BuildInfo, version, commit string) (string, string) {
	if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if commit == "" && revision != "" {
		commit = revision[:min(len(revision), 7)]
		if modified == "true" {
			commit += "-dirty"
		}
	}

	// No tag in the build info: date the dev build by its commit
	if version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = "dev-" + t.Format("20060102")
		}
	}

	return version, commit
}

// Full returns the full version string including commit and toolchain
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, runtime.Version())
}
