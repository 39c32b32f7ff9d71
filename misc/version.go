// Package misc keeps build time identity of the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X ssmlc/misc.version=... -X ssmlc/misc.gitHash=..."
var (
	appName = "ssmlc"
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit the program was built from. When not provided at
// link time VCS information embedded by the toolchain is used.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
