package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/boldbank-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and /health.
// Without ldflags the VCS revision embedded by the go tool is used.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		if rev, at, ok := vcsInfo(); ok {
			commit, built = rev, at
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsInfo() (rev, at string, ok bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
		case "vcs.time":
			at = s.Value
		}
	}
	if rev == "" {
		return "", "", false
	}
	if at == "" {
		at = "unknown"
	}
	return rev, at, true
}
