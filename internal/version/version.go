// Package version reports the ptable build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/ptable/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/ptable/internal/version.Commit=abc1234"
//
// When unset they come from the VCS stamp in the build info, or fall back to
// a dev version.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fromSettings(info.Settings)
		}
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromSettings fills Version and Commit from vcs.* build settings.
func fromSettings(settings []debug.BuildSetting) {
	var revision, modified, stamp string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			stamp = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// Build info carries no tags, so the best we can do is the commit date.
	if Version == "" && stamp != "" {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version with commit and Go runtime.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s %s/%s)", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
